package ports

// RevisionReader reads the revision marker of a checked-out source tree.
//
//go:generate mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionReader interface {
	// Revision returns the current revision of the tree at path.
	// A tree that is not under version control yields an empty revision.
	Revision(path string) (string, error)
}
