package builder

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
)

// pack writes the gzip archive out from the top-level entries of dir.
// Recognized subdirectories become embedded <name>.tar entries.
func (s *session) pack(ctx context.Context, pkg domain.Package, dir, out string) (err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryInvalid.Error()), "path", dir)
	}

	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", out)
	}

	w, err := s.archiver.Create(out, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(out)
		}
	}()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		abs := filepath.Join(dir, name)
		if s.filter.Excluded(name, entry.IsDir()) {
			continue
		}

		switch {
		case entry.IsDir() && s.nested[name]:
			nested, err := s.packNested(ctx, pkg, abs, name)
			if err != nil {
				return err
			}
			if err := w.AddFile(name+domain.NestedArchiveSuffix, nested); err != nil {
				return err
			}
		case entry.IsDir():
			if err := w.AddDir(name, abs); err != nil {
				return err
			}
			if err := s.addChildren(ctx, w, abs, name, name); err != nil {
				return err
			}
		default:
			if err := addRegular(w, name, abs); err != nil {
				return err
			}
		}
	}

	return nil
}

// packNested writes the uncompressed archive of dir into the work directory and returns its path.
func (s *session) packNested(ctx context.Context, pkg domain.Package, dir, name string) (string, error) {
	if err := s.ensureWorkDir(); err != nil {
		return "", err
	}

	out := s.nestedPath(pkg, name)
	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", out)
	}
	s.tracker.Register(out)

	w, err := s.archiver.Create(out, false)
	if err != nil {
		return "", err
	}
	if err := s.addChildren(ctx, w, dir, "", name); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return out, nil
}

// addChildren writes every entry below dir. Entry names are joined to prefix,
// filter paths are joined to filterPrefix.
func (s *session) addChildren(ctx context.Context, w ports.ArchiveWriter, dir, prefix, filterPrefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryInvalid.Error()), "path", dir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		abs := filepath.Join(dir, name)
		rel := path.Join(filterPrefix, name)
		if s.filter.Excluded(rel, entry.IsDir()) {
			continue
		}

		entryName := path.Join(prefix, name)
		if entry.IsDir() {
			if err := w.AddDir(entryName, abs); err != nil {
				return err
			}
			if err := s.addChildren(ctx, w, abs, entryName, rel); err != nil {
				return err
			}
			continue
		}
		if err := addRegular(w, entryName, abs); err != nil {
			return err
		}
	}
	return nil
}

// addRegular adds src when it resolves to a regular file. Sockets, devices and dangling links are skipped.
func addRegular(w ports.ArchiveWriter, name, src string) error {
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	return w.AddFile(name, src)
}
