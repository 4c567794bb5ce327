// Package version provides build version information.
package version

// These are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns the version number, normalized to "MAJOR.MINOR.PATCH[-PRE][+META]"
// when Version is valid semver and returned verbatim otherwise.
func Short() string {
	if v := Parsed(); v != nil {
		return v.String()
	}
	return Version
}
