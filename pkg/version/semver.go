package version

import (
	"github.com/Masterminds/semver/v3"
)

// parsed caches the semver form of Version, keyed by the raw string so that
// a Version changed after startup is parsed again.
var parsed struct {
	raw string
	ok  bool
	v   *semver.Version
}

// Parsed returns Version as a semantic version, or nil for values such as
// "dev" that tailhash builds carry when no release tag was injected.
func Parsed() *semver.Version {
	if parsed.ok && parsed.raw == Version {
		return parsed.v
	}

	parsed.raw, parsed.ok, parsed.v = Version, true, nil
	if v, err := semver.NewVersion(Version); err == nil {
		parsed.v = v
	}
	return parsed.v
}
