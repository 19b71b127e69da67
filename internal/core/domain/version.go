package domain

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/mod/semver"
)

// specialForms ranks the well-known pre and post release words.
// Plain numbers rank as numberForm, unknown words rank below dev.
var specialForms = map[string]int{
	"dev":   0,
	"alpha": 1,
	"a":     1,
	"beta":  2,
	"b":     2,
	"rc":    3,
	"pl":    5,
	"p":     5,
}

const (
	numberForm  = 4
	unknownForm = -6
)

// CompareVersions compares two version strings and returns -1, 0 or +1.
// Plain release versions are compared by semver rules. Everything else is split
// into numeric and word components and compared component by component, where a
// missing numeric component counts as zero and dev < alpha < beta < rc < release < pl.
func CompareVersions(a, b string) int {
	a, b = trimVersionPrefix(a), trimVersionPrefix(b)
	if va, vb := "v"+a, "v"+b; isPlainRelease(va) && isPlainRelease(vb) {
		return semver.Compare(va, vb)
	}

	pa := splitVersion(a)
	pb := splitVersion(b)

	n := max(len(pa), len(pb))
	for i := range n {
		var x, y string
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		if c := compareComponent(x, y); c != 0 {
			return c
		}
	}
	return 0
}

// VersionSatisfies reports whether version is greater than or equal to minVersion.
// An empty minVersion is always satisfied.
func VersionSatisfies(version, minVersion string) bool {
	if strings.TrimSpace(minVersion) == "" {
		return true
	}
	return CompareVersions(version, minVersion) >= 0
}

// isPlainRelease reports whether v is a valid semver without prerelease or build suffix.
// Suffixed versions follow the release form ranking instead of semver precedence.
func isPlainRelease(v string) bool {
	return semver.IsValid(v) && semver.Prerelease(v) == "" && semver.Build(v) == ""
}

// trimVersionPrefix drops surrounding space and a leading "v" in front of a digit.
func trimVersionPrefix(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 1 && (v[0] == 'v' || v[0] == 'V') && v[1] >= '0' && v[1] <= '9' {
		return v[1:]
	}
	return v
}

func splitVersion(v string) []string {
	v = strings.ToLower(strings.TrimSpace(v))

	var parts []string
	var current strings.Builder
	var lastDigit, started bool

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for _, r := range v {
		switch {
		case r == '.' || r == '-' || r == '_' || r == '+' || unicode.IsSpace(r):
			flush()
			started = false
			continue
		case unicode.IsDigit(r):
			if started && !lastDigit {
				flush()
			}
			lastDigit = true
		default:
			if started && lastDigit {
				flush()
			}
			lastDigit = false
		}
		current.WriteRune(r)
		started = true
	}
	flush()

	return parts
}

func compareComponent(x, y string) int {
	if x == y {
		return 0
	}

	xn, xIsNum := parseNumber(x)
	yn, yIsNum := parseNumber(y)

	switch {
	case xIsNum && yIsNum:
		return compareInt(xn, yn)
	case x == "" && yIsNum:
		return compareInt(0, yn)
	case y == "" && xIsNum:
		return compareInt(xn, 0)
	}

	return compareInt(formRank(x), formRank(y))
}

func parseNumber(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formRank maps a component to its special form rank. An absent component ranks
// like a release number so that "1.0rc1" sorts before "1.0" and "1.0pl1" after it.
func formRank(s string) int {
	if s == "" {
		return numberForm
	}
	if _, ok := parseNumber(s); ok {
		return numberForm
	}
	if rank, ok := specialForms[s]; ok {
		return rank
	}
	return unknownForm
}

func compareInt[T int | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
