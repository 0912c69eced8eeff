// Package pgsql provides PostgreSQL specific driver types.
package pgsql

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches the leading product and release fields of the
// string returned by the backend's version() function, e.g.
// "PostgreSQL 15.4 on x86_64-pc-linux-gnu, compiled by gcc ...".
var versionPattern = regexp.MustCompile(`^PostgreSQL\s+(\d+)\.(\d+)(?:\.(\d+))?`)

// Version holds the release number of the backend a call scope runs in.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses the version() string of the backend. An error is
// returned if the string does not denote a recognizable PostgreSQL
// release, indicating an unsupported backend.
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("unexpected product version string format: %q", s)
	}
	var v Version
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Patch, _ = strconv.Atoi(m[3])
	}
	return v, nil
}

func (v Version) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero returns true if all version fields are zero.
func (v Version) IsZero() bool { return v == Version{} }

func compareInt(i1, i2 int) int {
	switch {
	case i1 == i2:
		return 0
	case i1 > i2:
		return 1
	default:
		return -1
	}
}

// Compare compares the version with a second version v2. The result will be
//
//	 0 in case the two versions are equal,
//	-1 in case version v has lower precedence than v2,
//	 1 in case version v has higher precedence than v2.
func (v Version) Compare(v2 Version) int {
	if r := compareInt(v.Major, v2.Major); r != 0 {
		return r
	}
	if r := compareInt(v.Minor, v2.Minor); r != 0 {
		return r
	}
	return compareInt(v.Patch, v2.Patch)
}
