// Package sqlite implements the package catalog on top of an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS source_package (
	package_hash TEXT PRIMARY KEY,
	source_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	version TEXT NOT NULL,
	package_type TEXT NOT NULL DEFAULT '',
	directory TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_source_package_source ON source_package(source_id);
CREATE INDEX IF NOT EXISTS idx_source_package_name ON source_package(name);

CREATE TABLE IF NOT EXISTS referenced_package (
	package_hash TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	min_version TEXT NOT NULL DEFAULT '',
	file TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL,
	PRIMARY KEY (package_hash, position)
);

CREATE TABLE IF NOT EXISTS setup_resource (
	source_id INTEGER NOT NULL,
	directory TEXT NOT NULL,
	PRIMARY KEY (source_id, directory)
);

CREATE TABLE IF NOT EXISTS selected_package (
	source_id INTEGER NOT NULL,
	directory TEXT NOT NULL,
	name TEXT NOT NULL,
	hash TEXT NOT NULL DEFAULT '',
	selected_directory TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (source_id, directory, name)
);
`

// Store implements ports.CatalogStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore opens or creates the catalog database at path.
func NewStore(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogOpenFailed.Error()), "path", path)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogOpenFailed.Error()), "path", path)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogOpenFailed.Error()), "path", path)
	}

	return &Store{db: db}, nil
}

// ReplaceSource swaps the catalog of one source in a single transaction.
func (s *Store) ReplaceSource(
	ctx context.Context,
	sourceID int64,
	packages []domain.Package,
	resources []domain.SetupResource,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error())
	}

	if err := replaceSource(ctx, tx, sourceID, packages, resources); err != nil {
		_ = tx.Rollback()
		return zerr.With(zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error()), "source_id", sourceID)
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error())
	}
	return nil
}

func replaceSource(
	ctx context.Context,
	tx *sql.Tx,
	sourceID int64,
	packages []domain.Package,
	resources []domain.SetupResource,
) error {
	observed := make(map[string]bool, len(packages))
	for i := range packages {
		observed[packages[i].Hash] = true
	}

	stale, err := staleHashes(ctx, tx, sourceID, observed)
	if err != nil {
		return err
	}
	for _, hash := range stale {
		if _, err := tx.ExecContext(ctx, "DELETE FROM referenced_package WHERE package_hash = ?", hash); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM source_package WHERE package_hash = ?", hash); err != nil {
			return err
		}
	}

	for i := range packages {
		pkg := &packages[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO source_package (package_hash, source_id, name, version, package_type, directory, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(package_hash) DO UPDATE SET
				version = excluded.version,
				package_type = excluded.package_type,
				position = excluded.position`,
			pkg.Hash, sourceID, pkg.Name, pkg.Version, pkg.PackageType, pkg.Directory, i,
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM referenced_package WHERE package_hash = ?", pkg.Hash); err != nil {
			return err
		}
		for j, edge := range pkg.Edges {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO referenced_package (package_hash, position, name, min_version, file, kind)
				VALUES (?, ?, ?, ?, ?, ?)`,
				pkg.Hash, j, edge.Name, edge.MinVersion, edge.File, string(edge.Kind),
			)
			if err != nil {
				return err
			}
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM setup_resource WHERE source_id = ?", sourceID); err != nil {
		return err
	}
	for _, res := range resources {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO setup_resource (source_id, directory) VALUES (?, ?)",
			sourceID, res.Directory,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func staleHashes(ctx context.Context, tx *sql.Tx, sourceID int64, observed map[string]bool) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT package_hash FROM source_package WHERE source_id = ?", sourceID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var stale []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, err
		}
		if !observed[hash] {
			stale = append(stale, hash)
		}
	}
	return stale, rows.Err()
}

// Packages returns the packages of a source with their edges, in scan order.
func (s *Store) Packages(ctx context.Context, sourceID int64) ([]domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages, err := s.queryPackages(ctx, sourceID)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error()), "source_id", sourceID)
	}

	edges, err := s.queryEdges(ctx, sourceID)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error()), "source_id", sourceID)
	}

	for i := range packages {
		packages[i].Edges = edges[packages[i].Hash]
	}
	return packages, nil
}

func (s *Store) queryPackages(ctx context.Context, sourceID int64) ([]domain.Package, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT package_hash, name, version, package_type, directory
		FROM source_package WHERE source_id = ? ORDER BY position`,
		sourceID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var packages []domain.Package
	for rows.Next() {
		pkg := domain.Package{SourceID: sourceID}
		if err := rows.Scan(&pkg.Hash, &pkg.Name, &pkg.Version, &pkg.PackageType, &pkg.Directory); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func (s *Store) queryEdges(ctx context.Context, sourceID int64) (map[string][]domain.DependencyEdge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.package_hash, r.name, r.min_version, r.file, r.kind
		FROM referenced_package r
		JOIN source_package p ON p.package_hash = r.package_hash
		WHERE p.source_id = ?
		ORDER BY r.package_hash, r.position`,
		sourceID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	edges := make(map[string][]domain.DependencyEdge)
	for rows.Next() {
		var edge domain.DependencyEdge
		var kind string
		if err := rows.Scan(&edge.OwnerHash, &edge.Name, &edge.MinVersion, &edge.File, &kind); err != nil {
			return nil, err
		}
		edge.Kind = domain.DependencyKind(kind)
		edges[edge.OwnerHash] = append(edges[edge.OwnerHash], edge)
	}
	return edges, rows.Err()
}

// SetupResources returns every known setup resource ordered by source and directory.
func (s *Store) SetupResources(ctx context.Context) ([]domain.SetupResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT source_id, directory FROM setup_resource ORDER BY source_id, directory")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	var resources []domain.SetupResource
	for rows.Next() {
		var res domain.SetupResource
		if err := rows.Scan(&res.SourceID, &res.Directory); err != nil {
			return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
	}
	return resources, nil
}

// SaveSelection stores overrides for the package at directory. Existing overrides for the
// same names are replaced, others are kept.
func (s *Store) SaveSelection(ctx context.Context, sourceID int64, directory string, sel domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	directory = domain.NormalizeDirectory(directory)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error())
	}

	for _, name := range sel.Names() {
		o := sel[name]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO selected_package (source_id, directory, name, hash, selected_directory)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(source_id, directory, name) DO UPDATE SET
				hash = excluded.hash,
				selected_directory = excluded.selected_directory`,
			sourceID, directory, name, o.Hash, o.Directory,
		)
		if err != nil {
			_ = tx.Rollback()
			return zerr.With(zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error()), "package", name)
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error())
	}
	return nil
}

// Selection returns the saved overrides for the package at directory.
func (s *Store) Selection(ctx context.Context, sourceID int64, directory string) (domain.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, hash, selected_directory FROM selected_package
		WHERE source_id = ? AND directory = ?`,
		sourceID, domain.NormalizeDirectory(directory),
	)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	sel := make(domain.Selection)
	for rows.Next() {
		var name string
		var o domain.Override
		if err := rows.Scan(&name, &o.Hash, &o.Directory); err != nil {
			return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
		}
		sel[name] = o
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogQueryFailed.Error())
	}
	return sel, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Opener implements ports.CatalogOpener.
type Opener struct{}

// Open opens the catalog database at path.
func (Opener) Open(ctx context.Context, path string) (ports.CatalogStore, error) {
	return NewStore(ctx, path)
}
