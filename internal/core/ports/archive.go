package ports

// ArchiveWriter appends entries to an archive being written.
type ArchiveWriter interface {
	// AddFile writes the file at src as entry name.
	AddFile(name, src string) error

	// AddDir writes a directory header for entry name using the metadata of src.
	AddDir(name, src string) error

	// Close finalizes the archive.
	Close() error
}

// Archiver creates archive files.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type Archiver interface {
	// Create opens a new archive at path. Compressed archives are gzip streams.
	Create(path string, compressed bool) (ArchiveWriter, error)

	// List returns the entry names of the archive at path in stored order.
	List(path string) ([]string, error)
}
