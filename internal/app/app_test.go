package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/archive"
	"go.trai.ch/pb/internal/adapters/cache"
	"go.trai.ch/pb/internal/adapters/cas"
	"go.trai.ch/pb/internal/adapters/descriptor"
	"go.trai.ch/pb/internal/adapters/fs"
	"go.trai.ch/pb/internal/adapters/sqlite"
	"go.trai.ch/pb/internal/adapters/telemetry"
	"go.trai.ch/pb/internal/app"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports/mocks"
	"go.trai.ch/pb/internal/engine/builder"
	"go.trai.ch/pb/internal/engine/enginetest"
	"go.trai.ch/pb/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cfg     *domain.Config
	source  domain.Source
	app     *app.App
	out     *bytes.Buffer
	records *cas.Store
	metrics *mocks.MockMetrics
	watcher *mocks.MockWatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	source := domain.Source{
		ID:       1,
		Name:     "community",
		Path:     filepath.Join(root, "src"),
		BuildDir: filepath.Join(root, "build"),
	}
	extras := domain.Source{
		ID:       2,
		Name:     "extras",
		Path:     filepath.Join(root, "extras"),
		BuildDir: filepath.Join(root, "extras-build"),
	}
	enginetest.Mkdir(t, root, "src")
	enginetest.Mkdir(t, root, "extras")

	cfg := &domain.Config{
		Root:        root,
		Sources:     []domain.Source{source, extras},
		Build:       domain.BuildSettings{Pattern: domain.DefaultPattern},
		MaxDepth:    domain.DefaultMaxDepth,
		MetricsFile: filepath.Join(root, domain.DefaultMetricsPath()),
	}

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(cfg, nil).AnyTimes()
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockRevisions := mocks.NewMockRevisionReader(ctrl)
	mockRevisions.EXPECT().Revision(gomock.Any()).Return("", nil).AnyTimes()
	mockMetrics := mocks.NewMockMetrics(ctrl)
	mockMetrics.EXPECT().Flush(cfg.MetricsFile).Return(nil).AnyTimes()
	mockWatcher := mocks.NewMockWatcher(ctrl)

	records, err := cas.NewStore()
	require.NoError(t, err)

	reg := registry.New(descriptor.NewReader(), fs.NewFilterCompiler(), cache.NewStore(), mockLogger)
	b := builder.New(
		archive.NewArchiver(),
		fs.NewFilterCompiler(),
		mockRevisions,
		telemetry.NewNoOp(),
		&telemetry.NoOpMetrics{},
		mockLogger,
	)

	out := new(bytes.Buffer)
	a := app.New(
		mockLoader,
		sqlite.Opener{},
		reg,
		b,
		records,
		fs.NewHasher(),
		mockMetrics,
		telemetry.NewNoOp(),
		mockWatcher,
		mockLogger,
	).WithOutput(out)

	return &fixture{
		cfg:     cfg,
		source:  source,
		app:     a,
		out:     out,
		records: records,
		metrics: mockMetrics,
		watcher: mockWatcher,
	}
}

// writeCoreAddon writes com.example.core at core/ and an addon requiring it at addon/.
func (f *fixture) writeCoreAddon(t *testing.T, minVersion string) {
	t.Helper()
	core := enginetest.WritePackage(t, f.source.Path, "core", "com.example.core", "1.0.0")
	enginetest.WriteFile(t, core, "lib/core.php", "<?php")
	addon := enginetest.WritePackage(t, f.source.Path, "addon", "com.example.addon", "1.0.0",
		enginetest.Ref{Name: "com.example.core", MinVersion: minVersion, File: "requirements/core.tar.gz"},
	)
	enginetest.WriteFile(t, addon, "addon.php", "<?php")
}

func (f *fixture) scan(t *testing.T) {
	t.Helper()
	f.metrics.EXPECT().SetCatalogSize(gomock.Any(), gomock.Any()).AnyTimes()
	require.NoError(t, f.app.Scan(context.Background(), app.ScanOptions{Sources: []string{f.source.Name}}))
}

func TestApp_Scan(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	enginetest.WritePackage(t, f.cfg.Sources[1].Path, "theme", "com.example.theme", "2.0.0")

	f.metrics.EXPECT().SetCatalogSize("community", 2).Times(1)
	f.metrics.EXPECT().SetCatalogSize("extras", 1).Times(1)

	err := f.app.Scan(context.Background(), app.ScanOptions{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(f.cfg.Root, domain.DefaultCatalogPath()))
}

func TestApp_Scan_SelectedSource(t *testing.T) {
	f := newFixture(t)
	enginetest.WritePackage(t, f.cfg.Sources[1].Path, "theme", "com.example.theme", "2.0.0")

	f.metrics.EXPECT().SetCatalogSize("extras", 1).Times(1)

	require.NoError(t, f.app.Scan(context.Background(), app.ScanOptions{Sources: []string{"2"}}))
}

func TestApp_Scan_UnknownSource(t *testing.T) {
	f := newFixture(t)

	err := f.app.Scan(context.Background(), app.ScanOptions{Sources: []string{"missing"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceNotFound.Error())
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	f.scan(t)

	err := f.app.Build(context.Background(), app.BuildOptions{Source: "community", Directory: "addon"})
	require.NoError(t, err)

	archivePath := filepath.Join(f.source.BuildDir, "com.example.addon_1.0.0.tar.gz")
	assert.Equal(t, archivePath+"\n", f.out.String())
	assert.FileExists(t, archivePath)
	assert.NoDirExists(t, filepath.Join(f.source.Path, "addon", "requirements"))

	record, err := f.records.Get(f.cfg.Root, domain.PackageHash(1, "com.example.addon", "addon/"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "com.example.addon", record.Name)
	assert.Equal(t, archivePath, record.Archive)
	assert.Len(t, record.Checksum, 16)
	assert.NotEmpty(t, record.SessionID)
	assert.False(t, record.Timestamp.After(time.Now()))
}

func TestApp_Build_Pattern(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	f.scan(t)

	err := f.app.Build(context.Background(), app.BuildOptions{Directory: "core", Pattern: "pn", Source: "1"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(f.source.BuildDir, "com.example.core.tar.gz"))
}

func TestApp_Build_SaveSelection(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	enginetest.WritePackage(t, f.source.Path, "core-2", "com.example.core", "2.0.0")
	f.scan(t)

	sel := domain.Selection{"com.example.core": {Directory: "core/"}}
	err := f.app.Build(context.Background(), app.BuildOptions{
		Source:        "community",
		Directory:     "addon",
		Selection:     sel,
		SaveSelection: true,
	})
	require.NoError(t, err)

	f.out.Reset()
	require.NoError(t, f.app.Selection(context.Background(), "community", "addon"))
	assert.Equal(t, "com.example.core=:core/\n", f.out.String())
}

func TestApp_Build_MissingDependency(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "2.0.0")
	f.scan(t)

	err := f.app.Build(context.Background(), app.BuildOptions{Source: "community", Directory: "addon"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrBuildFailed.Error())
	assert.ErrorContains(t, err, domain.ErrDependencyMissing.Error())
	assert.Empty(t, f.out.String())
	assert.NoDirExists(t, filepath.Join(f.source.Path, "addon", "requirements"))

	record, err := f.records.Get(f.cfg.Root, domain.PackageHash(1, "com.example.addon", "addon/"))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestApp_Build_UnknownPackage(t *testing.T) {
	f := newFixture(t)
	f.scan(t)

	err := f.app.Build(context.Background(), app.BuildOptions{Source: "community", Directory: "missing"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageNotFound.Error())
}

func TestApp_Build_AmbiguousSource(t *testing.T) {
	f := newFixture(t)

	err := f.app.Build(context.Background(), app.BuildOptions{Directory: "addon"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceNotFound.Error())
}

func TestApp_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed")).Times(3)

	a := app.New(mockLoader, nil, nil, nil, nil, nil, nil, nil, nil, mocks.NewMockLogger(ctrl))

	assert.ErrorContains(t, a.Build(context.Background(), app.BuildOptions{}), "load failed")
	assert.ErrorContains(t, a.Scan(context.Background(), app.ScanOptions{}), "load failed")
	assert.ErrorContains(t, a.Clean(context.Background(), app.CleanOptions{Cache: true}), "load failed")
}

func TestApp_Preview(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	f.scan(t)

	err := f.app.Preview(context.Background(), app.PreviewOptions{Source: "community", Directory: "addon"})
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "com.example.addon 1.0.0 (addon/)")
	assert.Contains(t, out, "com.example.core → 1.0.0 core/")
	assert.Contains(t, out, "✓ 1.0.0 core/")
}

func TestApp_Preview_InsufficientVersion(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "2.0.0")
	f.scan(t)

	f.metrics.EXPECT().IncResolutionIssue(string(domain.IssueInsufficientVersion)).Times(1)

	err := f.app.Preview(context.Background(), app.PreviewOptions{Source: "community", Directory: "addon"})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrPreviewFailed)
	assert.ErrorContains(t, err, domain.ErrInsufficientVersion.Error())
	assert.Contains(t, f.out.String(), "✗ 1.0.0 core/")
}

func TestApp_Preview_Override(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")
	enginetest.WritePackage(t, f.source.Path, "core-2", "com.example.core", "2.0.0")
	f.scan(t)

	err := f.app.Preview(context.Background(), app.PreviewOptions{
		Source:    "community",
		Directory: "addon",
		Selection: domain.Selection{"com.example.core": {Directory: "core/"}},
	})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "com.example.core → 1.0.0 core/ [selected]")
}

func TestApp_Clean(t *testing.T) {
	t.Run("single archive", func(t *testing.T) {
		f := newFixture(t)
		enginetest.WriteFile(t, f.source.BuildDir, "a.tar.gz", "a")
		enginetest.WriteFile(t, f.source.BuildDir, "b.tar.gz", "b")

		err := f.app.Clean(context.Background(), app.CleanOptions{Source: "community", Archive: "a.tar.gz"})
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(f.source.BuildDir, "a.tar.gz"))
		assert.FileExists(t, filepath.Join(f.source.BuildDir, "b.tar.gz"))
	})

	t.Run("outside build directory", func(t *testing.T) {
		f := newFixture(t)
		enginetest.WriteFile(t, f.cfg.Root, "outside.tar.gz", "x")

		for _, name := range []string{"../outside.tar.gz", filepath.Join(f.cfg.Root, "outside.tar.gz"), "."} {
			err := f.app.Clean(context.Background(), app.CleanOptions{Source: "community", Archive: name})
			require.Error(t, err, name)
			assert.ErrorContains(t, err, domain.ErrArchiveOutsideBuildDir.Error())
		}
		assert.FileExists(t, filepath.Join(f.cfg.Root, "outside.tar.gz"))
	})

	t.Run("all archives", func(t *testing.T) {
		f := newFixture(t)
		enginetest.WriteFile(t, f.source.BuildDir, "a.tar.gz", "a")
		enginetest.WriteFile(t, f.source.BuildDir, "b.tar.gz", "b")
		enginetest.WriteFile(t, f.source.BuildDir, "notes.txt", "keep")

		err := f.app.Clean(context.Background(), app.CleanOptions{Source: "community", All: true})
		require.NoError(t, err)

		entries, err := os.ReadDir(f.source.BuildDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "notes.txt", entries[0].Name())
	})

	t.Run("records and cache", func(t *testing.T) {
		f := newFixture(t)
		enginetest.WriteFile(t, f.cfg.Root, ".pb/records/x.json", "{}")
		enginetest.WriteFile(t, f.cfg.Root, ".pb/cache/y.json", "{}")

		err := f.app.Clean(context.Background(), app.CleanOptions{Records: true, Cache: true})
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(f.cfg.Root, domain.DefaultStorePath()))
		assert.NoDirExists(t, filepath.Join(f.cfg.Root, domain.DefaultCachePath()))
	})
}

func TestApp_Selection_Empty(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.Selection(context.Background(), "community", "addon"))
	assert.Empty(t, f.out.String())
}

func TestApp_Resources(t *testing.T) {
	f := newFixture(t)
	enginetest.Mkdir(t, f.source.Path, "wcfsetup/install")
	enginetest.Mkdir(t, f.source.Path, "wcfsetup/setup")
	enginetest.Mkdir(t, f.cfg.Sources[1].Path, "tags/wcfsetup/5.4/install")
	enginetest.Mkdir(t, f.cfg.Sources[1].Path, "tags/wcfsetup/5.4/setup")
	f.metrics.EXPECT().SetCatalogSize(gomock.Any(), gomock.Any()).AnyTimes()
	require.NoError(t, f.app.Scan(context.Background(), app.ScanOptions{}))

	require.NoError(t, f.app.Resources(context.Background(), app.ResourcesOptions{}))
	assert.Equal(t, "community wcfsetup/\nextras tags/wcfsetup/5.4/\n", f.out.String())

	f.out.Reset()
	require.NoError(t, f.app.Resources(context.Background(), app.ResourcesOptions{Source: "extras"}))
	assert.Equal(t, "extras tags/wcfsetup/5.4/\n", f.out.String())
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	f.writeCoreAddon(t, "1.0.0")

	f.metrics.EXPECT().SetCatalogSize("community", 2).Times(1)
	f.metrics.EXPECT().SetCatalogSize("community", 3).Times(1)

	f.watcher.EXPECT().
		Watch(gomock.Any(), f.source.Path, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, onChange func([]string)) error {
			enginetest.WritePackage(t, f.source.Path, "ui", "com.example.ui", "1.0.0")
			onChange([]string{filepath.Join(f.source.Path, "ui", domain.DescriptorFileName)})
			return nil
		})

	require.NoError(t, f.app.Watch(context.Background(), app.WatchOptions{Source: "community"}))
}
