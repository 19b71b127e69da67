package domain

import "path/filepath"

const (
	// PbDirName is the name of the internal workspace directory.
	PbDirName = ".pb"

	// StoreDirName is the name of the build record store directory.
	StoreDirName = "records"

	// CacheDirName is the name of the catalog cache directory.
	CacheDirName = "cache"

	// CatalogFileName is the name of the catalog database.
	CatalogFileName = "catalog.db"

	// MetricsFileName is the name of the default metrics textfile.
	MetricsFileName = "metrics.prom"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pb.yaml"

	// DescriptorFileName is the name of the package descriptor file.
	DescriptorFileName = "package.xml"

	// SetupDirName is the basename of directories holding setup resources.
	SetupDirName = "wcfsetup"

	// SessionDirPrefix prefixes the per-session work directory inside a build directory.
	SessionDirPrefix = ".pb-session-"

	// ArchiveSuffix is appended to every produced archive name.
	ArchiveSuffix = ".tar.gz"

	// NestedArchiveSuffix is appended to nested sub-archives.
	NestedArchiveSuffix = ".tar"

	// DefaultMaxDepth is the default scan depth below a source root.
	DefaultMaxDepth = 3

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultNestedDirs lists the subdirectories packed as nested archives.
func DefaultNestedDirs() []string {
	return []string{"acptemplates", "files", "pip", "templates"}
}

// DefaultPbPath returns the default root directory for pb metadata.
func DefaultPbPath() string {
	return PbDirName
}

// DefaultStorePath returns the default path for the build record store.
// It joins .pb and records.
func DefaultStorePath() string {
	return filepath.Join(PbDirName, StoreDirName)
}

// DefaultCachePath returns the default path for the catalog cache.
// It joins .pb and cache.
func DefaultCachePath() string {
	return filepath.Join(PbDirName, CacheDirName)
}

// DefaultCatalogPath returns the default path of the catalog database.
func DefaultCatalogPath() string {
	return filepath.Join(PbDirName, CatalogFileName)
}

// DefaultMetricsPath returns the default metrics textfile path.
func DefaultMetricsPath() string {
	return filepath.Join(PbDirName, MetricsFileName)
}
