package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Location is where a dependency archive can be obtained from.
// It is either a BuiltArchive or an UnbuiltPackage.
type Location interface {
	location()
}

// BuiltArchive is a dependency that already exists as an archive file.
type BuiltArchive struct {
	Path string
}

// UnbuiltPackage is a dependency that must be built from its package directory first.
type UnbuiltPackage struct {
	Package Package
}

func (BuiltArchive) location()   {}
func (UnbuiltPackage) location() {}

// IsArchivePath reports whether p names an archive rather than a package directory.
func IsArchivePath(p string) bool {
	return strings.HasSuffix(p, ArchiveSuffix) || strings.HasSuffix(p, NestedArchiveSuffix)
}

// Resolved is the chosen catalog entry for a dependency name.
type Resolved struct {
	Name       string
	Hash       string
	Directory  string
	Version    string
	Overridden bool
}

// Resolution maps dependency names to their chosen entries in resolution order.
// The first entry recorded for a name wins.
type Resolution struct {
	entries map[string]Resolved
	order   []string
}

// NewResolution creates an empty Resolution.
func NewResolution() *Resolution {
	return &Resolution{entries: make(map[string]Resolved)}
}

// Add records r unless its name is already resolved. It reports whether r was recorded.
func (r *Resolution) Add(entry Resolved) bool {
	if _, exists := r.entries[entry.Name]; exists {
		return false
	}
	r.entries[entry.Name] = entry
	r.order = append(r.order, entry.Name)
	return true
}

// Get returns the entry for name.
func (r *Resolution) Get(name string) (Resolved, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns all entries in resolution order.
func (r *Resolution) Entries() []Resolved {
	out := make([]Resolved, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Len returns the number of resolved names.
func (r *Resolution) Len() int {
	return len(r.order)
}

// IssueKind classifies a resolution problem.
type IssueKind string

const (
	// IssueNotFound means no catalog entry carries the dependency name.
	IssueNotFound IssueKind = "not_found"
	// IssueInsufficientVersion means every candidate is older than the minimum version.
	IssueInsufficientVersion IssueKind = "insufficient_version"
	// IssueCycle means the dependency walk reached a package on its own active path.
	IssueCycle IssueKind = "cycle"
)

// Issue is a single accumulated resolution problem.
type Issue struct {
	Kind       IssueKind
	Dependency string
	Owner      string
	MinVersion string
	Cycle      string
}

// Err converts the issue into a zerr error carrying its details as metadata.
func (i Issue) Err() error {
	var err error
	switch i.Kind {
	case IssueInsufficientVersion:
		err = zerr.With(ErrInsufficientVersion, "min_version", i.MinVersion)
	case IssueCycle:
		err = zerr.With(ErrCyclicDependency, "cycle", i.Cycle)
	default:
		err = ErrDependencyNotFound
	}
	err = zerr.With(err, "dependency", i.Dependency)
	if i.Owner != "" {
		err = zerr.With(err, "package", i.Owner)
	}
	return err
}

// Candidate is one catalog entry considered for a dependency during preview.
type Candidate struct {
	Hash      string
	Directory string
	Version   string
	Chosen    bool
	TooOld    bool
}
