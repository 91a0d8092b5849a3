package stage

import (
	"fmt"

	"golang.org/x/mod/semver"
)

const Version = "v1.0.0"

// IsCompatibleVersion reports whether data written by version `have` can be
// read by version `want`. Major versions must match; minor and patch may differ.
func IsCompatibleVersion(have, want string) (bool, error) {
	if !semver.IsValid(have) {
		return false, fmt.Errorf("invalid version: %s", have)
	}
	if !semver.IsValid(want) {
		return false, fmt.Errorf("invalid version: %s", want)
	}

	return semver.Major(have) == semver.Major(want), nil
}

// CompatibilityError wraps ErrIncompatibleVersion with both versions.
func CompatibilityError(have, want string) error {
	return fmt.Errorf("%w: data written by %s, this build requires %s.x.x",
		ErrIncompatibleVersion, have, semver.Major(want))
}
