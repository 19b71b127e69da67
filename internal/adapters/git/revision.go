// Package git reads source revisions from git working trees.
package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/zerr"
)

// RevisionReader implements ports.RevisionReader using go-git.
type RevisionReader struct{}

// NewRevisionReader creates a new RevisionReader.
func NewRevisionReader() *RevisionReader {
	return &RevisionReader{}
}

// Revision returns the HEAD commit hash of the repository containing path.
// Paths outside a repository and repositories without commits yield an empty revision.
func (r *RevisionReader) Revision(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrRevisionReadFailed.Error()), "path", path)
	}

	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrRevisionReadFailed.Error()), "path", path)
	}

	return ref.Hash().String(), nil
}
