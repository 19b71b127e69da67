// Package resolver walks package dependency edges and picks a catalog entry for every dependency name.
package resolver

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Result is the outcome of resolving one root package.
// Problems are accumulated in Issues instead of stopping the walk.
type Result struct {
	Root       domain.Package
	Resolution *domain.Resolution
	Issues     []domain.Issue
	// Candidates lists, per dependency name, every catalog entry that was considered.
	Candidates map[string][]domain.Candidate
}

// Err joins the errors of all issues. It returns nil when resolution succeeded.
func (r *Result) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		errs = append(errs, issue.Err())
	}
	return errors.Join(errs...)
}

// Resolve walks the dependency edges of the package identified by rootHash depth first.
// Overrides in sel take precedence over the catalog search.
func Resolve(catalog *domain.Catalog, rootHash string, sel domain.Selection) (*Result, error) {
	root, ok := catalog.ByHash(rootHash)
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "hash", rootHash)
	}

	w := &walker{
		catalog: catalog,
		sel:     sel,
		walk:    domain.NewWalk(),
		result: &Result{
			Root:       root,
			Resolution: domain.NewResolution(),
			Candidates: make(map[string][]domain.Candidate),
		},
	}
	_ = w.walk.Enter(root.Hash, root.Name)
	w.visit(root)

	return w.result, nil
}

type walker struct {
	catalog *domain.Catalog
	sel     domain.Selection
	walk    *domain.Walk
	result  *Result
}

func (w *walker) visit(pkg domain.Package) {
	for _, edge := range pkg.Edges {
		w.follow(pkg, edge)
	}
	w.walk.Leave(pkg.Hash)
}

func (w *walker) follow(owner domain.Package, edge domain.DependencyEdge) {
	if resolved, ok := w.result.Resolution.Get(edge.Name); ok {
		if !resolved.Overridden && !domain.VersionSatisfies(resolved.Version, edge.MinVersion) {
			w.issue(domain.Issue{
				Kind:       domain.IssueInsufficientVersion,
				Dependency: edge.Name,
				Owner:      owner.Name,
				MinVersion: edge.MinVersion,
			})
		}
		w.descend(owner, resolved)
		return
	}

	if override, ok := w.sel.Lookup(edge.Name); ok {
		w.followOverride(owner, edge, override)
		return
	}

	candidates := w.catalog.Candidates(edge.Name)
	if len(candidates) == 0 {
		w.issue(domain.Issue{Kind: domain.IssueNotFound, Dependency: edge.Name, Owner: owner.Name})
		return
	}

	best, found := pickLatest(candidates, edge.MinVersion)
	w.result.Candidates[edge.Name] = describeCandidates(candidates, edge.MinVersion, best.Hash)
	if !found {
		w.issue(domain.Issue{
			Kind:       domain.IssueInsufficientVersion,
			Dependency: edge.Name,
			Owner:      owner.Name,
			MinVersion: edge.MinVersion,
		})
		return
	}

	w.enter(owner, best, false)
}

func (w *walker) followOverride(owner domain.Package, edge domain.DependencyEdge, override domain.Override) {
	if override.Hash == "" && domain.IsArchivePath(override.Directory) {
		w.result.Resolution.Add(domain.Resolved{
			Name:       edge.Name,
			Directory:  override.Directory,
			Overridden: true,
		})
		return
	}

	pkg, ok := lookupOverride(w.catalog, override)
	if !ok {
		w.issue(domain.Issue{Kind: domain.IssueNotFound, Dependency: edge.Name, Owner: owner.Name})
		return
	}

	w.result.Candidates[edge.Name] = describeCandidates(w.catalog.Candidates(edge.Name), edge.MinVersion, pkg.Hash)
	w.enter(owner, pkg, true)
}

// enter records pkg for its name and walks its edges unless that closes a cycle.
func (w *walker) enter(owner, pkg domain.Package, overridden bool) {
	if w.cyclic(owner, pkg) {
		return
	}
	w.result.Resolution.Add(domain.Resolved{
		Name:       pkg.Name,
		Hash:       pkg.Hash,
		Directory:  pkg.Directory,
		Version:    pkg.Version,
		Overridden: overridden,
	})
	if w.walk.Done(pkg.Hash) {
		return
	}
	_ = w.walk.Enter(pkg.Hash, pkg.Name)
	w.visit(pkg)
}

// descend walks an already resolved entry, which only matters when it closes a cycle.
func (w *walker) descend(owner domain.Package, resolved domain.Resolved) {
	if resolved.Hash == "" {
		return
	}
	pkg, ok := w.catalog.ByHash(resolved.Hash)
	if !ok {
		return
	}
	w.cyclic(owner, pkg)
}

func (w *walker) cyclic(owner, pkg domain.Package) bool {
	if !w.walk.Active(pkg.Hash) {
		return false
	}
	w.issue(domain.Issue{
		Kind:       domain.IssueCycle,
		Dependency: pkg.Name,
		Owner:      owner.Name,
		Cycle:      w.walk.CyclePath(pkg.Hash, pkg.Name),
	})
	return true
}

func (w *walker) issue(issue domain.Issue) {
	w.result.Issues = append(w.result.Issues, issue)
}

// Locate finds where the archive for dependency name can be obtained from.
// Relative override archive paths are resolved against sourceRoot.
func Locate(
	catalog *domain.Catalog,
	sourceRoot, name, minVersion string,
	sel domain.Selection,
) (domain.Location, error) {
	if override, ok := sel.Lookup(name); ok {
		if override.Hash == "" && domain.IsArchivePath(override.Directory) {
			archive := override.Directory
			if !filepath.IsAbs(archive) {
				archive = filepath.Join(sourceRoot, archive)
			}
			if info, err := os.Stat(archive); err == nil && info.Mode().IsRegular() {
				return domain.BuiltArchive{Path: archive}, nil
			}
			return nil, zerr.With(domain.Issue{Kind: domain.IssueNotFound, Dependency: name}.Err(), "archive", archive)
		}

		pkg, found := lookupOverride(catalog, override)
		if !found {
			return nil, domain.Issue{Kind: domain.IssueNotFound, Dependency: name}.Err()
		}
		return domain.UnbuiltPackage{Package: pkg}, nil
	}

	candidates := catalog.Candidates(name)
	if len(candidates) == 0 {
		return nil, domain.Issue{Kind: domain.IssueNotFound, Dependency: name}.Err()
	}

	best, found := pickLatest(candidates, minVersion)
	if !found {
		return nil, domain.Issue{
			Kind:       domain.IssueInsufficientVersion,
			Dependency: name,
			MinVersion: minVersion,
		}.Err()
	}
	return domain.UnbuiltPackage{Package: best}, nil
}

// pickLatest returns the highest version at or above minVersion. Equal versions keep the earlier entry.
func pickLatest(candidates []domain.Package, minVersion string) (domain.Package, bool) {
	var best domain.Package
	found := false
	for _, c := range candidates {
		if !domain.VersionSatisfies(c.Version, minVersion) {
			continue
		}
		if !found || domain.CompareVersions(c.Version, best.Version) > 0 {
			best = c
			found = true
		}
	}
	return best, found
}

func lookupOverride(catalog *domain.Catalog, override domain.Override) (domain.Package, bool) {
	if override.Hash != "" {
		return catalog.ByHash(override.Hash)
	}
	return catalog.ByDirectory(override.Directory)
}

func describeCandidates(candidates []domain.Package, minVersion, chosenHash string) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, domain.Candidate{
			Hash:      c.Hash,
			Directory: c.Directory,
			Version:   c.Version,
			Chosen:    c.Hash == chosenHash,
			TooOld:    !domain.VersionSatisfies(c.Version, minVersion),
		})
	}
	return out
}
