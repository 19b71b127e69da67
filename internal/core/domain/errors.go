package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDescriptor is returned when a package descriptor is missing, malformed or incomplete.
	ErrInvalidDescriptor = zerr.New("invalid package descriptor")

	// ErrDescriptorReadFailed is returned when a package descriptor cannot be read from disk.
	ErrDescriptorReadFailed = zerr.New("failed to read package descriptor")

	// ErrDependencyNotFound is returned when no catalog candidate exists for a dependency name.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrInsufficientVersion is returned when candidates exist but none satisfies the minimum version.
	ErrInsufficientVersion = zerr.New("no candidate satisfies minimum version")

	// ErrCyclicDependency is returned when a package is reached again while still on the active path.
	ErrCyclicDependency = zerr.New("cyclic dependency detected")

	// ErrDependencyMissing is returned when a build cannot locate or build a required dependency archive.
	ErrDependencyMissing = zerr.New("can not build package, dependency archive not found")

	// ErrPackageNotFound is returned when a requested package directory is not part of the catalog.
	ErrPackageNotFound = zerr.New("package not found in catalog")

	// ErrSourceNotFound is returned when a source id or name is not configured.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrSourceDirInvalid is returned when a source path is not a readable directory.
	ErrSourceDirInvalid = zerr.New("source directory is invalid")

	// ErrDirectoryInvalid is returned when a package directory cannot be listed.
	ErrDirectoryInvalid = zerr.New("given directory is not valid")

	// ErrCopyFailed is returned when a dependency archive cannot be copied into a package directory.
	ErrCopyFailed = zerr.New("unable to copy archive, check permissions")

	// ErrArchiveCreateFailed is returned when an archive file cannot be created.
	ErrArchiveCreateFailed = zerr.New("failed to create archive")

	// ErrArchiveWriteFailed is returned when an entry cannot be written to an archive.
	ErrArchiveWriteFailed = zerr.New("failed to write archive entry")

	// ErrArchiveOutsideBuildDir is returned when deleting an archive outside the build directory is requested.
	ErrArchiveOutsideBuildDir = zerr.New("archive is outside the build directory")

	// ErrInvalidSelection is returned when a selection override cannot be parsed.
	ErrInvalidSelection = zerr.New("invalid selection, expected name=hash:directory")

	// ErrInvalidPattern is returned when a filename pattern has no known token.
	ErrInvalidPattern = zerr.New("filename pattern contains no known token")

	// ErrPreviewFailed is returned when a dependency preview reports one or more problems.
	ErrPreviewFailed = zerr.New("dependency preview reported problems")

	// ErrBuildFailed is returned when a build session aborts.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCatalogOpenFailed is returned when the catalog database cannot be opened.
	ErrCatalogOpenFailed = zerr.New("failed to open catalog database")

	// ErrCatalogQueryFailed is returned when reading from the catalog database fails.
	ErrCatalogQueryFailed = zerr.New("failed to query catalog")

	// ErrCatalogWriteFailed is returned when writing to the catalog database fails.
	ErrCatalogWriteFailed = zerr.New("failed to write catalog")

	// ErrCacheReadFailed is returned when a cache entry exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheInvalidateFailed is returned when a cache entry cannot be removed.
	ErrCacheInvalidateFailed = zerr.New("failed to invalidate cache entry")

	// ErrStoreCreateFailed is returned when the build record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find pb.yaml")

	// ErrInvalidSourceName is returned when a source name contains invalid characters.
	ErrInvalidSourceName = zerr.New("source name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateSource is returned when two sources share an id or a name.
	ErrDuplicateSource = zerr.New("duplicate source")

	// ErrInvalidSourceID is returned when a source id is not positive.
	ErrInvalidSourceID = zerr.New("source id must be greater than zero")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrRevisionReadFailed is returned when the revision of a repository cannot be determined.
	ErrRevisionReadFailed = zerr.New("failed to read repository revision")

	// ErrWatcherFailed is returned when the source watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch source tree")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics")
)
