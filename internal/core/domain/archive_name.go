package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Filename pattern tokens.
const (
	TokenName     = "pn"
	TokenVersion  = "pv"
	TokenRevision = "pr"
	TokenTime     = "t"
)

const (
	// DefaultPattern names top-level archives.
	DefaultPattern = TokenName + "_" + TokenVersion
	// DependencyPattern names archives built for another package.
	DependencyPattern = TokenName
)

// PatternChoices lists the filename patterns offered to users.
func PatternChoices() []string {
	return []string{"pn", "pn_pv", "pn_pr", "pn_pv_pr", "pn_t", "pn_pv_t", "pn_pr_t", "pn_pv_pr_t"}
}

// ArchiveName renders a filename pattern with the given token values.
// Unknown tokens are dropped and spaces in values become underscores.
func ArchiveName(pattern string, values map[string]string) string {
	parts := make([]string, 0, 4)
	for token := range strings.SplitSeq(pattern, "_") {
		value, ok := values[token]
		if !ok {
			continue
		}
		parts = append(parts, strings.ReplaceAll(value, " ", "_"))
	}
	return strings.Join(parts, "_") + ArchiveSuffix
}

// UnknownTokens returns the tokens of pattern that ArchiveName would drop.
func UnknownTokens(pattern string) []string {
	var unknown []string
	for token := range strings.SplitSeq(pattern, "_") {
		switch token {
		case TokenName, TokenVersion, TokenRevision, TokenTime:
		default:
			unknown = append(unknown, token)
		}
	}
	return unknown
}

// ValidatePattern ensures a pattern yields a non-empty name.
func ValidatePattern(pattern string) error {
	if len(UnknownTokens(pattern)) == len(strings.Split(pattern, "_")) {
		return zerr.With(ErrInvalidPattern, "pattern", pattern)
	}
	return nil
}
