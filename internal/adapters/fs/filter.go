package fs

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FilterCompiler = (*FilterCompiler)(nil)
	_ ports.Filter         = (*Filter)(nil)
)

// vcsDirs are never scanned or archived.
var vcsDirs = map[string]bool{".git": true, ".svn": true}

// FilterCompiler builds glob based filters.
type FilterCompiler struct{}

// NewFilterCompiler creates a new FilterCompiler.
func NewFilterCompiler() *FilterCompiler {
	return &FilterCompiler{}
}

// Compile compiles patterns with '/' as separator. A pattern is matched against both
// the entry name and its slash separated relative path.
func (c *FilterCompiler) Compile(patterns []string, includeDotFiles bool) (ports.Filter, error) {
	f := &Filter{includeDotFiles: includeDotFiles}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// Filter skips self and parent markers, VCS metadata, hidden entries and glob matches.
type Filter struct {
	globs           []glob.Glob
	includeDotFiles bool
}

// Excluded reports whether the entry at rel is skipped.
func (f *Filter) Excluded(rel string, isDir bool) bool {
	rel = strings.TrimSuffix(rel, "/")
	name := path.Base(rel)

	switch {
	case name == "." || name == ".." || name == "/":
		return true
	case isDir && vcsDirs[name]:
		return true
	case !f.includeDotFiles && strings.HasPrefix(name, "."):
		return true
	}

	for _, g := range f.globs {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}
