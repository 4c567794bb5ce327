// Package testutil provides testing utilities.
package testutil

import "testing"

// SkipProcessTests skips tests that re-execute the test binary as a child
// process. They are skipped under -short.
func SkipProcessTests(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping process test in short mode")
	}
}
