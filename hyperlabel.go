// Package hyperlabel is a terminal text label with tappable links.
//
// The label package holds the gesture handler and the Bubble Tea component,
// tcellhost adapts the same handler to tcell, rangemap is the range-to-value
// registry, and textlayout lays text out on terminal cells.
package hyperlabel

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre, Build          string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses s without a leading v.
func ParseVersion(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return SemVer{}, fmt.Errorf("hyperlabel: invalid version %q", s)
	}
	var v SemVer
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, fmt.Errorf("hyperlabel: invalid version %q: %w", s, err)
		}
		*dst = n
	}
	v.Pre, v.Build = m[4], m[5]
	return v, nil
}

// Version returns the library version without the v prefix.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}
