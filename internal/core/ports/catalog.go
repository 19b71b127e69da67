package ports

import (
	"context"

	"go.trai.ch/pb/internal/core/domain"
)

// CatalogStore persists package catalogs, dependency edges, setup resources and saved selections.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogStore interface {
	// ReplaceSource upserts packages, deletes the source's stale packages, replaces the
	// edges of every given package and replaces the source's setup resources.
	// Readers never observe a partially replaced source.
	ReplaceSource(ctx context.Context, sourceID int64, packages []domain.Package, resources []domain.SetupResource) error

	// Packages returns the source's packages, with edges, in scan order.
	Packages(ctx context.Context, sourceID int64) ([]domain.Package, error)

	// SetupResources returns every known setup resource.
	SetupResources(ctx context.Context) ([]domain.SetupResource, error)

	// SaveSelection stores overrides for the package at directory, replacing existing ones per name.
	SaveSelection(ctx context.Context, sourceID int64, directory string, sel domain.Selection) error

	// Selection returns the saved overrides for the package at directory.
	Selection(ctx context.Context, sourceID int64, directory string) (domain.Selection, error)

	// Close releases the underlying database.
	Close() error
}

// CatalogOpener opens the catalog database of a workspace.
type CatalogOpener interface {
	// Open opens or creates the database at path.
	Open(ctx context.Context, path string) (CatalogStore, error)
}

// CacheStore is a key-value cache of derived catalog data kept below a workspace root.
type CacheStore interface {
	// Get decodes the entry for key into v. A miss returns false and no error.
	Get(root, key string, v any) (bool, error)

	// Put stores v under key.
	Put(root, key string, v any) error

	// Invalidate removes key. Removing a missing key is not an error.
	Invalidate(root, key string) error
}
