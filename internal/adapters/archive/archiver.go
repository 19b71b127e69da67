// Package archive writes tar archives, optionally gzip compressed.
package archive

import (
	"archive/tar"
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Archiver implements ports.Archiver.
type Archiver struct{}

// NewArchiver creates a new Archiver.
func NewArchiver() *Archiver {
	return &Archiver{}
}

// Create opens a new archive at path, truncating any existing file.
func (a *Archiver) Create(path string, compressed bool) (ports.ArchiveWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // Archive paths are derived from the configured build directory
	f, err := os.Create(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", path)
	}

	w := &Writer{path: path, file: f}
	var out io.Writer = f
	if compressed {
		w.gz = gzip.NewWriter(f)
		out = w.gz
	}
	w.tw = tar.NewWriter(out)
	return w, nil
}

// List returns the entry names of the archive at path. Gzip streams are detected by their magic bytes.
func (a *Archiver) List(path string) ([]string, error) {
	//nolint:gosec // Archive paths are derived from the configured build directory
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	var in io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
		}
		defer func() { _ = gz.Close() }()
		in = gz
	}

	var names []string
	tr := tar.NewReader(in)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
		}
		names = append(names, hdr.Name)
	}
}

// Writer appends entries to one archive file.
type Writer struct {
	path string
	file *os.File
	gz   *gzip.Writer
	tw   *tar.Writer
}

// AddFile writes the regular file at src as entry name.
func (w *Writer) AddFile(name, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return w.fail(err, name)
	}
	if !info.Mode().IsRegular() {
		return w.fail(zerr.New("not a regular file"), name)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return w.fail(err, name)
	}
	hdr.Name = entryName(name)

	if err := w.tw.WriteHeader(hdr); err != nil {
		return w.fail(err, name)
	}

	//nolint:gosec // src comes from walking a package directory
	f, err := os.Open(src)
	if err != nil {
		return w.fail(err, name)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w.tw, f); err != nil {
		return w.fail(err, name)
	}
	return nil
}

// AddDir writes a directory header for entry name using the metadata of src.
func (w *Writer) AddDir(name, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return w.fail(err, name)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return w.fail(err, name)
	}
	hdr.Typeflag = tar.TypeDir
	hdr.Name = strings.TrimSuffix(entryName(name), "/") + "/"

	if err := w.tw.WriteHeader(hdr); err != nil {
		return w.fail(err, name)
	}
	return nil
}

// Close flushes the tar stream, the gzip stream and the file.
func (w *Writer) Close() error {
	errs := []error{w.tw.Close()}
	if w.gz != nil {
		errs = append(errs, w.gz.Close())
	}
	errs = append(errs, w.file.Close())

	if err := errors.Join(errs...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", w.path)
	}
	return nil
}

func (w *Writer) fail(err error, entry string) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", w.path)
	return zerr.With(err, "entry", entry)
}

func entryName(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "/")
}
