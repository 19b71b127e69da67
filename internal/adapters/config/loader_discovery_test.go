package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/config"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoader_Load_FindsConfigInParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
sources:
  - id: 1
    name: main
    path: src
`)

	nested := filepath.Join(rootDir, "src", "com.example.core", "files")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := config.NewLoader(mockLogger).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, rootDir, cfg.Root)
	assert.Equal(t, filepath.Join(rootDir, "src"), cfg.Sources[0].Path)
}

func TestLoader_Load_NearestConfigWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `sources: [{id: 1, name: outer}]`)

	inner := filepath.Join(rootDir, "inner")
	require.NoError(t, os.Mkdir(inner, domain.DirPerm))
	createFile(t, inner, domain.ConfigFileName, `sources: [{id: 1, name: inner}]`)

	cfg, err := config.NewLoader(mockLogger).Load(inner)
	require.NoError(t, err)
	assert.Equal(t, "inner", cfg.Sources[0].Name)
}

func TestLoader_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(mockLogger).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
