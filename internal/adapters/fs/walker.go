// Package fs provides file system adapters for hashing, filtering and walking trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/pb/internal/core/ports"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields root and every directory below it that filter does not exclude.
// Excluded directories are not descended into. A nil filter only skips VCS metadata.
func (w *Walker) WalkDirs(root string, filter ports.Filter) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && p != root {
					return filepath.SkipDir
				}
				return err
			}
			if !d.IsDir() {
				return nil
			}

			if p != root {
				rel, relErr := filepath.Rel(root, p)
				if relErr != nil {
					return filepath.SkipDir
				}
				if w.skip(filepath.ToSlash(rel), d.Name(), filter) {
					return filepath.SkipDir
				}
			}

			if !yield(p) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skip(rel, name string, filter ports.Filter) bool {
	if filter != nil {
		return filter.Excluded(rel, true)
	}
	return vcsDirs[name]
}
