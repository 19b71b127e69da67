package ports

import "go.trai.ch/pb/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the latest build record for a package hash.
	// Returns nil, nil if not found.
	Get(root, packageHash string) (*domain.BuildRecord, error)

	// Put stores the build record.
	Put(root string, record domain.BuildRecord) error
}
