// Package builder assembles package archives and the archives of their dependencies.
package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/pb/internal/engine/resolver"
	"go.trai.ch/pb/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// timeFormat renders the t filename token.
const timeFormat = "20060102-150405"

// revisionLength is the number of revision characters used in the pr token.
const revisionLength = 8

// Options controls how archives are assembled.
type Options struct {
	// Pattern names the requested archive. Dependency archives always use domain.DependencyPattern.
	Pattern         string
	Exclude         []string
	IncludeDotFiles bool
	// NestedDirs are top-level subdirectories packed as embedded <name>.tar archives.
	NestedDirs []string
	Selection  domain.Selection
}

// Request describes one build invocation.
type Request struct {
	Source  domain.Source
	Catalog *domain.Catalog
	Package domain.Package
	Options Options
}

// Result describes a finished build invocation.
type Result struct {
	SessionID string
	// Archive is the path of the requested archive. It is empty when the build failed.
	Archive  string
	Revision string
	// Temporary lists the intermediate artifacts that were removed when the session ended.
	Temporary []string
}

// Builder assembles archives.
type Builder struct {
	archiver  ports.Archiver
	filters   ports.FilterCompiler
	revisions ports.RevisionReader
	telemetry ports.Telemetry
	metrics   ports.Metrics
	logger    ports.Logger
	now       func() time.Time
}

// New creates a Builder.
func New(
	archiver ports.Archiver,
	filters ports.FilterCompiler,
	revisions ports.RevisionReader,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	logger ports.Logger,
) *Builder {
	return &Builder{
		archiver:  archiver,
		filters:   filters,
		revisions: revisions,
		telemetry: telemetry,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Build assembles the archive of req.Package and every dependency archive it needs.
// Intermediate artifacts are removed before Build returns, whatever the outcome.
func (b *Builder) Build(ctx context.Context, req Request) (res Result, err error) {
	s, err := b.newSession(req)
	if err != nil {
		return Result{}, err
	}
	res.SessionID = s.id

	defer func() {
		res.Temporary = s.tracker.Paths()
		s.tracker.PurgeAll()
	}()

	archive, err := s.build(ctx, req.Package, s.opts.Pattern, false)
	res.Revision = s.revision
	if err != nil {
		return res, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "package", req.Package.Name)
	}
	res.Archive = archive
	return res, nil
}

// built is an archive produced earlier in the session.
type built struct {
	path    string
	version string
}

// session is the state of one Build invocation.
type session struct {
	*Builder

	id       string
	source   domain.Source
	catalog  *domain.Catalog
	opts     Options
	filter   ports.Filter
	nested   map[string]bool
	tracker  *tracker.Tracker
	walk     *domain.Walk
	memo     map[string]built
	workDir  string
	revision string
	started  time.Time
}

func (b *Builder) newSession(req Request) (*session, error) {
	opts := req.Options
	if opts.Pattern == "" {
		opts.Pattern = domain.DefaultPattern
	}
	if err := domain.ValidatePattern(opts.Pattern); err != nil {
		return nil, err
	}
	if opts.NestedDirs == nil {
		opts.NestedDirs = domain.DefaultNestedDirs()
	}

	filter, err := b.filters.Compile(opts.Exclude, opts.IncludeDotFiles)
	if err != nil {
		return nil, err
	}

	nested := make(map[string]bool, len(opts.NestedDirs))
	for _, name := range opts.NestedDirs {
		nested[name] = true
	}

	id := uuid.NewString()
	s := &session{
		Builder: b,
		id:      id,
		source:  req.Source,
		catalog: req.Catalog,
		opts:    opts,
		filter:  filter,
		nested:  nested,
		tracker: tracker.New(b.logger),
		walk:    domain.NewWalk(),
		memo:    make(map[string]built),
		workDir: filepath.Join(req.Source.BuildDir, domain.SessionDirPrefix+id),
		started: b.now(),
	}
	s.revision = s.readRevision()
	return s, nil
}

func (s *session) readRevision() string {
	rev := s.source.Revision
	if rev == "" && s.revisions != nil {
		var err error
		rev, err = s.revisions.Revision(s.source.Path)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("revision of %s unavailable: %v", s.source.Path, err))
			return ""
		}
	}
	if len(rev) > revisionLength {
		rev = rev[:revisionLength]
	}
	return rev
}

// build assembles the archive of pkg. Disposable archives are built into the session
// work directory and removed with it.
func (s *session) build(ctx context.Context, pkg domain.Package, pattern string, disposable bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.walk.Enter(pkg.Hash, pkg.Name); err != nil {
		return "", zerr.With(err, "package", pkg.Name)
	}
	defer s.walk.Leave(pkg.Hash)

	ctx, vertex := s.telemetry.Record(ctx, pkg.Name)
	start := time.Now()

	outDir := s.source.BuildDir
	if disposable {
		outDir = s.workDir
	}
	out := filepath.Join(outDir, domain.ArchiveName(pattern, s.tokens(pkg)))
	if disposable {
		s.tracker.Register(out)
	}

	err := s.assemble(ctx, pkg, out, vertex)

	status := domain.VertexStatusCompleted
	if err != nil {
		status = domain.VertexStatusFailed
	}
	s.metrics.ObserveBuild(pkg.Name, time.Since(start).Seconds(), string(status))
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	s.memo[pkg.Name] = built{path: out, version: pkg.Version}
	return out, nil
}

func (s *session) tokens(pkg domain.Package) map[string]string {
	values := map[string]string{
		domain.TokenName:    pkg.Name,
		domain.TokenVersion: pkg.Version,
		domain.TokenTime:    s.started.Format(timeFormat),
	}
	if s.revision != "" {
		values[domain.TokenRevision] = "r" + s.revision
	}
	return values
}

func (s *session) assemble(ctx context.Context, pkg domain.Package, out string, vertex ports.Vertex) error {
	dir := filepath.Join(s.source.Path, filepath.FromSlash(pkg.Directory))

	if err := s.satisfy(ctx, pkg, dir, vertex); err != nil {
		return err
	}

	s.note(vertex, pkg.Name, domain.LogLevelInfo, "packing "+pkg.Directory)
	return s.pack(ctx, pkg, dir, out)
}

// satisfy makes sure every dependency archive named by a file hint exists inside dir.
func (s *session) satisfy(ctx context.Context, pkg domain.Package, dir string, vertex ports.Vertex) error {
	for _, edge := range pkg.Edges {
		if edge.File == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(dir, filepath.FromSlash(edge.File))
		if _, err := os.Stat(target); err == nil {
			s.metrics.ObserveBuild(edge.Name, 0, string(domain.VertexStatusSkipped))
			s.note(vertex, pkg.Name, domain.LogLevelInfo, edge.File+" is shipped with the package")
			continue
		}

		if prev, ok := s.memo[edge.Name]; ok {
			if err := s.reusable(prev, edge); err != nil {
				missing := zerr.With(zerr.Wrap(err, domain.ErrDependencyMissing.Error()), "file", edge.File)
				return zerr.With(missing, "package", pkg.Name)
			}
			_, cached := s.telemetry.Record(ctx, edge.Name)
			cached.Cached()
			s.metrics.ObserveBuild(edge.Name, 0, string(domain.VertexStatusCached))
			if err := s.place(prev.path, dir, target); err != nil {
				return err
			}
			s.note(vertex, pkg.Name, domain.LogLevelInfo, fmt.Sprintf("reused %s %s as %s", edge.Name, prev.version, edge.File))
			continue
		}

		loc, err := resolver.Locate(s.catalog, s.source.Path, edge.Name, edge.MinVersion, s.opts.Selection)
		if err != nil {
			missing := zerr.With(zerr.Wrap(err, domain.ErrDependencyMissing.Error()), "file", edge.File)
			return zerr.With(missing, "package", pkg.Name)
		}

		archive, err := s.obtain(ctx, loc)
		if err != nil {
			return err
		}
		if err := s.place(archive, dir, target); err != nil {
			return err
		}
		s.note(vertex, pkg.Name, domain.LogLevelInfo, fmt.Sprintf("added %s as %s", edge.Name, edge.File))
	}
	return nil
}

// reusable checks that an archive built earlier in the session meets the minimum version
// of edge. Overridden dependencies are taken as selected.
func (s *session) reusable(prev built, edge domain.DependencyEdge) error {
	if _, ok := s.opts.Selection.Lookup(edge.Name); ok {
		return nil
	}
	if domain.VersionSatisfies(prev.version, edge.MinVersion) {
		return nil
	}
	err := domain.Issue{
		Kind:       domain.IssueInsufficientVersion,
		Dependency: edge.Name,
		MinVersion: edge.MinVersion,
	}.Err()
	return zerr.With(err, "version", prev.version)
}

// note logs msg on vertex and, from info level up, on the logger.
func (s *session) note(vertex ports.Vertex, name string, level domain.LogLevel, msg string) {
	vertex.Log(level, msg)
	if level >= domain.LogLevelInfo {
		s.logger.Info(name + ": " + msg)
	}
}

// obtain returns the path of the archive at loc, building it when needed.
func (s *session) obtain(ctx context.Context, loc domain.Location) (string, error) {
	switch loc := loc.(type) {
	case domain.BuiltArchive:
		return loc.Path, nil
	case domain.UnbuiltPackage:
		if err := s.ensureWorkDir(); err != nil {
			return "", err
		}
		return s.build(ctx, loc.Package, domain.DependencyPattern, true)
	default:
		return "", domain.ErrDependencyNotFound
	}
}

// place copies archive to target and registers the copy and any directory created for it.
func (s *session) place(archive, pkgDir, target string) error {
	if err := s.mkdirTracked(pkgDir, filepath.Dir(target)); err != nil {
		return err
	}

	s.tracker.Register(target)
	if err := copyFile(archive, target); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "from", archive), "path", target)
	}
	return nil
}

// mkdirTracked creates dir below base, registering the topmost directory it creates.
func (s *session) mkdirTracked(base, dir string) error {
	first := ""
	for p := dir; p != base && p != filepath.Dir(p); p = filepath.Dir(p) {
		if _, err := os.Stat(p); err == nil {
			break
		}
		first = p
	}
	if first == "" {
		return nil
	}

	s.tracker.Register(first)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dir)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is a located dependency archive
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // dst is inside a package directory
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ensureWorkDir creates the session work directory on first use.
func (s *session) ensureWorkDir() error {
	if s.tracker.IsTemporary(s.workDir) {
		return nil
	}
	s.tracker.Register(s.workDir)
	if err := os.MkdirAll(s.workDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", s.workDir)
	}
	return nil
}

// nestedPath returns the work directory path of the nested archive for dir name of pkg.
func (s *session) nestedPath(pkg domain.Package, name string) string {
	return filepath.Join(s.workDir, domain.ShortHash(pkg.Hash), name+domain.NestedArchiveSuffix)
}
