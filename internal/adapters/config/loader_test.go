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
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
}

func TestLoader_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
sources:
  - id: 1
    name: community
    path: ./src
    buildDir: ./build
  - id: 2
    name: plugins
    path: /opt/plugins
build:
  pattern: pn_pv_pr
  exclude: ["*.bak", "node_modules", "*.bak"]
  includeDotFiles: true
scan:
  maxDepth: 5
`)

	cfg, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, cfg.Root)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, domain.Source{
		ID:       1,
		Name:     "community",
		Path:     filepath.Join(rootDir, "src"),
		BuildDir: filepath.Join(rootDir, "build"),
	}, cfg.Sources[0])
	assert.Equal(t, "/opt/plugins", cfg.Sources[1].Path)
	assert.Equal(t, "/opt/plugins/build", cfg.Sources[1].BuildDir)

	assert.Equal(t, "pn_pv_pr", cfg.Build.Pattern)
	assert.Equal(t, []string{"*.bak", "node_modules"}, cfg.Build.Exclude)
	assert.Equal(t, domain.DefaultNestedDirs(), cfg.Build.NestedDirs)
	assert.True(t, cfg.Build.IncludeDotFiles)
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.Equal(t, filepath.Join(rootDir, domain.DefaultMetricsPath()), cfg.MetricsFile)
}

func TestLoader_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
sources:
  - id: 1
    name: main
`)

	cfg, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, cfg.Sources[0].Path)
	assert.Equal(t, filepath.Join(rootDir, "build"), cfg.Sources[0].BuildDir)
	assert.Equal(t, domain.DefaultPattern, cfg.Build.Pattern)
	assert.Equal(t, domain.DefaultMaxDepth, cfg.MaxDepth)
	assert.False(t, cfg.Build.IncludeDotFiles)
}

func TestLoader_Load_UnknownPatternTokensWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
sources:
  - id: 1
    name: main
build:
  pattern: pn_date
`)

	cfg, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, "pn_date", cfg.Build.Pattern)
}

func TestLoader_Load_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "invalid pattern",
			content: `
sources: [{id: 1, name: main}]
build: {pattern: foo_bar}
`,
			wantErr: domain.ErrInvalidPattern,
		},
		{
			name:    "zero id",
			content: `sources: [{id: 0, name: main}]`,
			wantErr: domain.ErrInvalidSourceID,
		},
		{
			name:    "invalid name",
			content: `sources: [{id: 1, name: "has space"}]`,
			wantErr: domain.ErrInvalidSourceName,
		},
		{
			name:    "duplicate id",
			content: `sources: [{id: 1, name: a}, {id: 1, name: b}]`,
			wantErr: domain.ErrDuplicateSource,
		},
		{
			name:    "duplicate name",
			content: `sources: [{id: 1, name: a}, {id: 2, name: a}]`,
			wantErr: domain.ErrDuplicateSource,
		},
		{
			name:    "malformed yaml",
			content: "sources: [",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			_, err := config.NewLoader(mockLogger).Load(rootDir)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_DuplicateIDMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `sources: [{id: 3, name: a}, {id: 3, name: b}]`)

	_, err := config.NewLoader(mockLogger).Load(rootDir)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	meta := zErr.Metadata()
	assert.Equal(t, "a", meta["first_occurrence"])
	assert.Equal(t, "b", meta["duplicate_at"])
}
