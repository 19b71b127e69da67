package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Source string
	// Archive is a single archive to delete, relative to the source build directory.
	Archive string
	// All deletes every archive in the source build directory.
	All     bool
	Records bool
	Cache   bool
}

// Clean removes archives, build records and cached catalog data based on the provided options.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	if opts.Archive != "" || opts.All {
		src, err := selectSource(cfg, opts.Source)
		if err != nil {
			return err
		}
		if opts.Archive != "" {
			if err := a.removeArchive(src, opts.Archive); err != nil {
				return err
			}
		}
		if opts.All {
			errs = errors.Join(errs, a.removeArchives(src))
		}
	}

	// Helper to remove a directory and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Records {
		remove(filepath.Join(cfg.Root, domain.DefaultStorePath()), "build records")
	}
	if opts.Cache {
		remove(filepath.Join(cfg.Root, domain.DefaultCachePath()), "catalog cache")
	}

	return errs
}

func (a *App) removeArchive(src domain.Source, name string) error {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(src.BuildDir, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(filepath.Clean(src.BuildDir), path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return zerr.With(domain.ErrArchiveOutsideBuildDir, "path", path)
	}

	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove archive"), "path", path)
	}
	a.logger.Info("removed " + path)
	return nil
}

func (a *App) removeArchives(src domain.Source) error {
	entries, err := os.ReadDir(src.BuildDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryInvalid.Error()), "path", src.BuildDir)
	}

	var errs error
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.ArchiveSuffix) {
			continue
		}
		path := filepath.Join(src.BuildDir, entry.Name())
		if err := os.Remove(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove archive"), "path", path))
			continue
		}
		removed++
	}
	a.logger.Info(fmt.Sprintf("removed %d archives from %s", removed, src.BuildDir))
	return errs
}

// Selection prints the saved overrides of the package at dir, one name=hash:directory per line.
func (a *App) Selection(ctx context.Context, sourceRef, dir string) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	src, err := selectSource(ws.cfg, sourceRef)
	if err != nil {
		return err
	}

	sel, err := ws.Store.Selection(ctx, src.ID, domain.NormalizeDirectory(dir))
	if err != nil {
		return err
	}
	if len(sel) == 0 {
		a.logger.Info("no saved selection for " + dir)
		return nil
	}

	for _, name := range sel.Names() {
		o := sel[name]
		_, _ = fmt.Fprintf(a.out, "%s=%s:%s\n", name, o.Hash, o.Directory)
	}
	return nil
}
