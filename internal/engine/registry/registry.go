// Package registry scans source trees for packages and serves the persisted catalog.
package registry

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// SetupResourcesKey is the cache key of the setup resource list.
const SetupResourcesKey = "setup-resources"

// PackagesKey returns the cache key of a source's package list.
func PackagesKey(sourceID int64) string {
	return "packages-" + strconv.FormatInt(sourceID, 10)
}

// DependencyKey returns the cache key of a source's dependency map.
func DependencyKey(sourceID int64) string {
	return "package-dependency-" + strconv.FormatInt(sourceID, 10)
}

// Workspace is the persistent state a registry operates on.
type Workspace struct {
	// Root is the directory holding the .pb directory.
	Root  string
	Store ports.CatalogStore
}

// ScanOptions controls a source scan.
type ScanOptions struct {
	MaxDepth int
	Exclude  []string
}

// ScanResult is everything found in one source tree, in scan order.
type ScanResult struct {
	Packages  []domain.Package
	Resources []domain.SetupResource
}

// Stats summarizes a refresh.
type Stats struct {
	Source    string
	Packages  int
	Resources int
	Edges     int
}

// Registry builds and serves package catalogs.
type Registry struct {
	descriptors ports.DescriptorReader
	filters     ports.FilterCompiler
	cache       ports.CacheStore
	logger      ports.Logger

	group singleflight.Group
}

// New creates a Registry.
func New(
	descriptors ports.DescriptorReader,
	filters ports.FilterCompiler,
	cache ports.CacheStore,
	logger ports.Logger,
) *Registry {
	return &Registry{
		descriptors: descriptors,
		filters:     filters,
		cache:       cache,
		logger:      logger,
	}
}

// Scan walks source.Path up to opts.MaxDepth levels deep. A directory holding a descriptor
// becomes a package and is not descended into. A wcfsetup directory yields setup resources.
func (r *Registry) Scan(source domain.Source, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(source.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDirInvalid.Error()), "path", source.Path)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrSourceDirInvalid, "path", source.Path)
	}

	filter, err := r.filters.Compile(opts.Exclude, true)
	if err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}

	s := &scan{registry: r, source: source, filter: filter, result: &ScanResult{}}
	if err := s.dir("", maxDepth); err != nil {
		return nil, err
	}
	return s.result, nil
}

type scan struct {
	registry *Registry
	source   domain.Source
	filter   ports.Filter
	result   *ScanResult
}

func (s *scan) dir(rel string, remaining int) error {
	abs := filepath.Join(s.source.Path, filepath.FromSlash(rel))

	if s.registry.descriptors.Exists(abs) {
		return s.addPackage(rel, abs)
	}

	if filepath.Base(abs) == domain.SetupDirName {
		s.addSetupResources(rel, abs)
		return nil
	}

	if remaining == 0 {
		return nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		if rel == "" {
			return zerr.With(zerr.Wrap(err, domain.ErrSourceDirInvalid.Error()), "path", abs)
		}
		s.registry.logger.Warn(fmt.Sprintf("skipping unreadable directory %s: %v", abs, err))
		return nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := path.Join(rel, entry.Name())
		if s.filter.Excluded(child, true) {
			continue
		}
		if err := s.dir(child, remaining-1); err != nil {
			return err
		}
	}
	return nil
}

func (s *scan) addPackage(rel, abs string) error {
	desc, err := s.registry.descriptors.Read(abs)
	if err != nil {
		return err
	}

	desc.Required = stripBundled(abs, desc.Required)
	desc.Optional = stripBundled(abs, desc.Optional)

	s.result.Packages = append(s.result.Packages, domain.NewPackage(s.source.ID, rel, desc))
	return nil
}

// stripBundled drops references whose archive already ships inside the package directory.
func stripBundled(dir string, refs []domain.DependencyRef) []domain.DependencyRef {
	kept := refs[:0:0]
	for _, ref := range refs {
		if ref.File != "" && fileExists(filepath.Join(dir, filepath.FromSlash(ref.File))) {
			continue
		}
		kept = append(kept, ref)
	}
	return kept
}

func (s *scan) addSetupResources(rel, abs string) {
	if isSetupResource(abs) {
		s.result.Resources = append(s.result.Resources, domain.SetupResource{
			SourceID:  s.source.ID,
			Directory: domain.NormalizeDirectory(rel),
		})
		return
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		s.registry.logger.Warn(fmt.Sprintf("skipping unreadable setup directory %s: %v", abs, err))
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() || !isSetupResource(filepath.Join(abs, entry.Name())) {
			continue
		}
		s.result.Resources = append(s.result.Resources, domain.SetupResource{
			SourceID:  s.source.ID,
			Directory: domain.NormalizeDirectory(path.Join(rel, entry.Name())),
		})
	}
}

func isSetupResource(dir string) bool {
	return dirExists(filepath.Join(dir, "install")) && dirExists(filepath.Join(dir, "setup"))
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func dirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// EdgeCount returns the number of dependency edges across the result.
func (s *ScanResult) EdgeCount() int {
	n := 0
	for _, p := range s.Packages {
		n += len(p.Edges)
	}
	return n
}

// Persist replaces the stored catalog of sourceID with result and invalidates the derived cache entries.
func (r *Registry) Persist(ctx context.Context, ws Workspace, sourceID int64, result *ScanResult) error {
	if err := ws.Store.ReplaceSource(ctx, sourceID, result.Packages, result.Resources); err != nil {
		return err
	}

	for _, key := range []string{PackagesKey(sourceID), DependencyKey(sourceID), SetupResourcesKey} {
		if err := r.cache.Invalidate(ws.Root, key); err != nil {
			return err
		}
	}
	return nil
}

// Refresh scans source and persists the result.
func (r *Registry) Refresh(ctx context.Context, ws Workspace, source domain.Source, opts ScanOptions) (Stats, error) {
	result, err := r.Scan(source, opts)
	if err != nil {
		return Stats{}, zerr.With(err, "source", source.Name)
	}
	if err := r.Persist(ctx, ws, source.ID, result); err != nil {
		return Stats{}, zerr.With(err, "source", source.Name)
	}

	return Stats{
		Source:    source.Name,
		Packages:  len(result.Packages),
		Resources: len(result.Resources),
		Edges:     result.EdgeCount(),
	}, nil
}

// Catalog returns the packages of sourceID with their edges. It reads through the cache
// and regenerates both cache entries from the store on a miss. Concurrent callers share
// one regeneration.
func (r *Registry) Catalog(ctx context.Context, ws Workspace, sourceID int64) (*domain.Catalog, error) {
	v, err, _ := r.group.Do(ws.Root+"\x00"+PackagesKey(sourceID), func() (any, error) {
		return r.loadCatalog(ctx, ws, sourceID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Catalog), nil
}

func (r *Registry) loadCatalog(ctx context.Context, ws Workspace, sourceID int64) (*domain.Catalog, error) {
	var packages []domain.Package
	var edges map[string][]domain.DependencyEdge

	hit := r.cached(ws.Root, PackagesKey(sourceID), &packages) &&
		r.cached(ws.Root, DependencyKey(sourceID), &edges)

	if !hit {
		stored, err := ws.Store.Packages(ctx, sourceID)
		if err != nil {
			return nil, err
		}

		packages = make([]domain.Package, 0, len(stored))
		edges = make(map[string][]domain.DependencyEdge, len(stored))
		for _, p := range stored {
			if len(p.Edges) > 0 {
				edges[p.Hash] = p.Edges
			}
			p.Edges = nil
			packages = append(packages, p)
		}

		r.store(ws.Root, PackagesKey(sourceID), packages)
		r.store(ws.Root, DependencyKey(sourceID), edges)
	}

	catalog := &domain.Catalog{SourceID: sourceID, Packages: make([]domain.Package, 0, len(packages))}
	for _, p := range packages {
		p.Edges = edges[p.Hash]
		catalog.Packages = append(catalog.Packages, p)
	}
	return catalog, nil
}

// SetupResources returns every known setup resource, read through the cache.
func (r *Registry) SetupResources(ctx context.Context, ws Workspace) ([]domain.SetupResource, error) {
	v, err, _ := r.group.Do(ws.Root+"\x00"+SetupResourcesKey, func() (any, error) {
		var resources []domain.SetupResource
		if r.cached(ws.Root, SetupResourcesKey, &resources) {
			return resources, nil
		}

		resources, err := ws.Store.SetupResources(ctx)
		if err != nil {
			return nil, err
		}
		r.store(ws.Root, SetupResourcesKey, resources)
		return resources, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.SetupResource), nil
}

// cached reports a hit for key. Unreadable entries count as a miss.
func (r *Registry) cached(root, key string, v any) bool {
	hit, err := r.cache.Get(root, key, v)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("ignoring cache entry %s: %v", key, err))
		return false
	}
	return hit
}

func (r *Registry) store(root, key string, v any) {
	if err := r.cache.Put(root, key, v); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to cache %s: %v", key, err))
	}
}
