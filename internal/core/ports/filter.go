package ports

// Filter decides which directory entries are left out of scans and archives.
type Filter interface {
	// Excluded reports whether the entry at the slash separated relative path is skipped.
	Excluded(rel string, isDir bool) bool
}

// FilterCompiler builds filters from user supplied patterns.
//
//go:generate mockgen -source=filter.go -destination=mocks/mock_filter.go -package=mocks
type FilterCompiler interface {
	// Compile returns a filter skipping ".", "..", entries matching patterns and,
	// unless includeDotFiles is set, entries whose name starts with a dot.
	Compile(patterns []string, includeDotFiles bool) (Filter, error)
}
