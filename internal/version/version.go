// Package version normalises the build version injected through ldflags.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Display returns the version as shown to users: "v"-prefixed canonical
// semver for release builds, or the raw string (e.g., "dev") otherwise.
func Display(raw string) string {
	v, err := parse(raw)
	if err != nil {
		return raw
	}
	return "v" + v.String()
}

// IsRelease reports whether raw is a valid semver without a prerelease part.
func IsRelease(raw string) bool {
	v, err := parse(raw)
	return err == nil && v.Prerelease() == ""
}

// parse strips a leading "v" and parses the version string.
func parse(raw string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
}
