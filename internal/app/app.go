// Package app implements the application layer for pb.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/pb/internal/engine/builder"
	"go.trai.ch/pb/internal/engine/registry"
	"go.trai.ch/pb/internal/engine/resolver"
	"go.trai.ch/pb/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalogs     ports.CatalogOpener
	registry     *registry.Registry
	builder      *builder.Builder
	records      ports.BuildRecordStore
	hasher       ports.Hasher
	metrics      ports.Metrics
	telemetry    ports.Telemetry
	watcher      ports.Watcher
	logger       ports.Logger
	out          io.Writer
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalogs ports.CatalogOpener,
	reg *registry.Registry,
	b *builder.Builder,
	records ports.BuildRecordStore,
	hasher ports.Hasher,
	metrics ports.Metrics,
	telemetry ports.Telemetry,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		catalogs:     catalogs,
		registry:     reg,
		builder:      b,
		records:      records,
		hasher:       hasher,
		metrics:      metrics,
		telemetry:    telemetry,
		watcher:      watcher,
		logger:       log,
		out:          os.Stdout,
		now:          time.Now,
	}
}

// WithOutput sets the writer that receives command results such as archive paths.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// workspace is a loaded configuration plus its opened catalog.
type workspace struct {
	cfg *domain.Config
	registry.Workspace
}

func (w *workspace) close() {
	_ = w.Store.Close()
}

func (a *App) openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.catalogs.Open(ctx, filepath.Join(cfg.Root, domain.DefaultCatalogPath()))
	if err != nil {
		return nil, err
	}

	return &workspace{
		cfg:       cfg,
		Workspace: registry.Workspace{Root: cfg.Root, Store: store},
	}, nil
}

func selectSource(cfg *domain.Config, ref string) (domain.Source, error) {
	if ref == "" {
		return cfg.DefaultSource()
	}
	return cfg.Source(ref)
}

func scanOptions(cfg *domain.Config) registry.ScanOptions {
	return registry.ScanOptions{MaxDepth: cfg.MaxDepth, Exclude: cfg.Build.Exclude}
}

func (a *App) flushMetrics(cfg *domain.Config) {
	if err := a.metrics.Flush(cfg.MetricsFile); err != nil {
		a.logger.Warn(err.Error())
	}
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	// Sources names the sources to scan by name or id. Empty means every configured source.
	Sources []string
}

// Scan refreshes the catalog of the selected sources. Sources are scanned concurrently.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	sources := ws.cfg.Sources
	if len(opts.Sources) > 0 {
		sources = make([]domain.Source, 0, len(opts.Sources))
		for _, ref := range opts.Sources {
			src, err := ws.cfg.Source(ref)
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}
	}

	stats := make([]registry.Stats, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			s, err := a.registry.Refresh(gctx, ws.Workspace, src, scanOptions(ws.cfg))
			if err != nil {
				return err
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range stats {
		a.metrics.SetCatalogSize(s.Source, s.Packages)
		a.logger.Info(fmt.Sprintf("%s: %d packages, %d setup resources, %d dependencies",
			s.Source, s.Packages, s.Resources, s.Edges))
	}
	a.flushMetrics(ws.cfg)
	return nil
}

// PreviewOptions configuration for the Preview method.
type PreviewOptions struct {
	Source    string
	Directory string
	Selection domain.Selection
}

// Preview resolves the dependencies of the package at Directory and prints every candidate
// considered per dependency together with all problems found.
func (a *App) Preview(ctx context.Context, opts PreviewOptions) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	src, catalog, pkg, err := a.target(ctx, ws, opts.Source, opts.Directory)
	if err != nil {
		return err
	}

	sel, err := a.selection(ctx, ws, src, pkg, opts.Selection)
	if err != nil {
		return err
	}

	result, err := resolver.Resolve(catalog, pkg.Hash, sel)
	if err != nil {
		return err
	}
	a.printResolution(result)

	for _, issue := range result.Issues {
		a.metrics.IncResolutionIssue(string(issue.Kind))
	}
	a.flushMetrics(ws.cfg)

	if len(result.Issues) > 0 {
		return errors.Join(domain.ErrPreviewFailed, result.Err())
	}
	return nil
}

func (a *App) printResolution(result *resolver.Result) {
	root := result.Root
	_, _ = fmt.Fprintf(a.out, "%s %s (%s)\n", root.Name, root.Version, root.Directory)

	for _, entry := range result.Resolution.Entries() {
		marker := ""
		if entry.Overridden {
			marker = " [selected]"
		}
		_, _ = fmt.Fprintf(a.out, "  %s %s %s %s%s\n", entry.Name, style.Arrow, entry.Version, entry.Directory, marker)
		a.printCandidates(result.Candidates[entry.Name])
	}

	for _, issue := range result.Issues {
		_, _ = fmt.Fprintf(a.out, "  %s %s\n", style.Warning, issue.Err())
		if issue.Kind == domain.IssueInsufficientVersion {
			a.printCandidates(result.Candidates[issue.Dependency])
		}
	}
}

func (a *App) printCandidates(candidates []domain.Candidate) {
	for _, c := range candidates {
		_, _ = fmt.Fprintf(a.out, "    %s %s %s\n", style.CandidateIcon(c.Chosen, c.TooOld), c.Version, c.Directory)
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Source    string
	Directory string
	// Pattern overrides the configured filename pattern when set.
	Pattern   string
	Selection domain.Selection
	// SaveSelection persists Selection for the package before building.
	SaveSelection   bool
	Exclude         []string
	IncludeDotFiles bool
}

// Build assembles the archive of the package at Directory, records the result and
// prints the archive path.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(err.Error())
		}
	}()

	src, catalog, pkg, err := a.target(ctx, ws, opts.Source, opts.Directory)
	if err != nil {
		return err
	}

	if opts.SaveSelection && len(opts.Selection) > 0 {
		if err := ws.Store.SaveSelection(ctx, src.ID, pkg.Directory, opts.Selection); err != nil {
			return err
		}
	}
	sel, err := a.selection(ctx, ws, src, pkg, opts.Selection)
	if err != nil {
		return err
	}

	settings := ws.cfg.Build
	pattern := opts.Pattern
	if pattern == "" {
		pattern = settings.Pattern
	}

	res, err := a.builder.Build(ctx, builder.Request{
		Source:  src,
		Catalog: catalog,
		Package: pkg,
		Options: builder.Options{
			Pattern:         pattern,
			Exclude:         append(slices.Clone(settings.Exclude), opts.Exclude...),
			IncludeDotFiles: settings.IncludeDotFiles || opts.IncludeDotFiles,
			NestedDirs:      settings.NestedDirs,
			Selection:       sel,
		},
	})
	a.flushMetrics(ws.cfg)
	if err != nil {
		return err
	}

	checksum, err := a.hasher.ComputeFileHash(res.Archive)
	if err != nil {
		return err
	}

	record := domain.BuildRecord{
		PackageHash: pkg.Hash,
		Name:        pkg.Name,
		Version:     pkg.Version,
		Archive:     res.Archive,
		Checksum:    checksum,
		SessionID:   res.SessionID,
		Revision:    res.Revision,
		Timestamp:   a.now(),
	}
	if err := a.records.Put(ws.Root, record); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("built %s %s (session %s)", pkg.Name, pkg.Version, res.SessionID))
	_, _ = fmt.Fprintln(a.out, res.Archive)
	return nil
}

// target returns the source, its catalog and the package at dir.
func (a *App) target(
	ctx context.Context,
	ws *workspace,
	sourceRef, dir string,
) (domain.Source, *domain.Catalog, domain.Package, error) {
	src, err := selectSource(ws.cfg, sourceRef)
	if err != nil {
		return domain.Source{}, nil, domain.Package{}, err
	}

	catalog, err := a.registry.Catalog(ctx, ws.Workspace, src.ID)
	if err != nil {
		return domain.Source{}, nil, domain.Package{}, err
	}

	pkg, ok := catalog.ByDirectory(dir)
	if !ok {
		err := zerr.With(zerr.With(domain.ErrPackageNotFound, "directory", dir), "source", src.Name)
		return domain.Source{}, nil, domain.Package{}, err
	}
	return src, catalog, pkg, nil
}

// selection merges the saved overrides of pkg with explicit ones. Explicit overrides win.
func (a *App) selection(
	ctx context.Context,
	ws *workspace,
	src domain.Source,
	pkg domain.Package,
	explicit domain.Selection,
) (domain.Selection, error) {
	saved, err := ws.Store.Selection(ctx, src.ID, pkg.Directory)
	if err != nil {
		return nil, err
	}

	sel := make(domain.Selection, len(saved)+len(explicit))
	maps.Copy(sel, saved)
	maps.Copy(sel, explicit)
	return sel, nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Source string
}

// Watch rescans the source whenever files below it change. It blocks until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	src, err := selectSource(ws.cfg, opts.Source)
	if err != nil {
		return err
	}

	refresh := func() {
		stats, err := a.registry.Refresh(ctx, ws.Workspace, src, scanOptions(ws.cfg))
		if err != nil {
			a.logger.Error(err)
			return
		}
		a.metrics.SetCatalogSize(stats.Source, stats.Packages)
		a.flushMetrics(ws.cfg)
		a.logger.Info(fmt.Sprintf("%s: %d packages, %d setup resources, %d dependencies",
			stats.Source, stats.Packages, stats.Resources, stats.Edges))
	}

	refresh()
	a.logger.Info("watching " + src.Path)

	return a.watcher.Watch(ctx, src.Path, func(paths []string) {
		a.logger.Info(fmt.Sprintf("%d paths changed in %s, rescanning", len(paths), src.Name))
		refresh()
	})
}
