package ports

import "go.trai.ch/pb/internal/core/domain"

// DescriptorReader reads package descriptors from package directories.
//
//go:generate mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type DescriptorReader interface {
	// Exists reports whether dir contains a descriptor file.
	Exists(dir string) bool

	// Read parses and validates the descriptor in dir.
	// Malformed or incomplete descriptors yield domain.ErrInvalidDescriptor.
	Read(dir string) (*domain.Descriptor, error)
}
