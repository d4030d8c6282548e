// Package version provides network file format version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the network file format version written by this library.
const Current = "1.0"

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string. A bare "major" is read as
// "major.0".
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 1 {
		parts = append(parts, "0")
	}
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) FormatVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}

// Supported reports whether a file declaring s can be read by this library.
func Supported(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	if current := MustParse(Current); !current.Compatible(v) {
		return fmt.Errorf("version %s is not compatible with %s", v, current)
	}
	return nil
}
