package ports

// Hasher defines the interface for computing content checksums.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash returns the hex checksum of the file at path.
	ComputeFileHash(path string) (string, error)
}
