package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/archive"
	"go.trai.ch/pb/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestArchiver_CreateAndList(t *testing.T) {
	tests := []struct {
		name       string
		compressed bool
		file       string
	}{
		{"gzip", true, "out.tar.gz"},
		{"plain tar", false, "out.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := t.TempDir()
			writeFile(t, filepath.Join(src, "package.xml"), "<package/>")
			writeFile(t, filepath.Join(src, "lib", "a.php"), "<?php")

			out := filepath.Join(t.TempDir(), "nested", tt.file)
			a := archive.NewArchiver()

			w, err := a.Create(out, tt.compressed)
			require.NoError(t, err)
			require.NoError(t, w.AddFile("package.xml", filepath.Join(src, "package.xml")))
			require.NoError(t, w.AddDir("lib", filepath.Join(src, "lib")))
			require.NoError(t, w.AddFile("lib/a.php", filepath.Join(src, "lib", "a.php")))
			require.NoError(t, w.Close())

			names, err := a.List(out)
			require.NoError(t, err)
			assert.Equal(t, []string{"package.xml", "lib/", "lib/a.php"}, names)
		})
	}
}

func TestWriter_AddFileErrors(t *testing.T) {
	src := t.TempDir()
	a := archive.NewArchiver()

	w, err := a.Create(filepath.Join(t.TempDir(), "out.tar.gz"), true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	err = w.AddFile("missing.txt", filepath.Join(src, "missing.txt"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArchiveWriteFailed.Error())

	err = w.AddFile("dir", src)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArchiveWriteFailed.Error())
}

func TestArchiver_CreateFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	writeFile(t, blocker, "")

	_, err := archive.NewArchiver().Create(filepath.Join(blocker, "out.tar.gz"), true)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArchiveCreateFailed.Error())
}

func TestArchiver_ListMissing(t *testing.T) {
	_, err := archive.NewArchiver().List(filepath.Join(t.TempDir(), "missing.tar.gz"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
