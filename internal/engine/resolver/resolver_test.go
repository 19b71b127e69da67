package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/engine/resolver"
	"go.trai.ch/zerr"
)

type dep struct {
	name, minVersion string
}

func pkg(dir, name, version string, deps ...dep) domain.Package {
	desc := &domain.Descriptor{Name: name, Version: version}
	for _, d := range deps {
		desc.Required = append(desc.Required, domain.DependencyRef{Name: d.name, MinVersion: d.minVersion})
	}
	return domain.NewPackage(1, dir, desc)
}

func catalogOf(pkgs ...domain.Package) *domain.Catalog {
	return &domain.Catalog{SourceID: 1, Packages: pkgs}
}

func TestResolve_PicksLatestSatisfyingVersion(t *testing.T) {
	addon := pkg("addon", "addon", "1.0.0", dep{"core", "1.1.0"})
	catalog := catalogOf(
		addon,
		pkg("core-1.0", "core", "1.0.0"),
		pkg("core-1.2", "core", "1.2.0"),
		pkg("core-1.1", "core", "1.1.0"),
	)

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)
	require.NoError(t, res.Err())

	got, ok := res.Resolution.Get("core")
	require.True(t, ok)
	assert.Equal(t, "core-1.2/", got.Directory)

	cands := res.Candidates["core"]
	require.Len(t, cands, 3)
	assert.True(t, cands[0].TooOld)
	assert.True(t, cands[1].Chosen)
	assert.False(t, cands[2].Chosen)
}

func TestResolve_TieGoesToFirstInScanOrder(t *testing.T) {
	addon := pkg("addon", "addon", "1.0.0", dep{"core", ""})
	catalog := catalogOf(
		addon,
		pkg("a/core", "core", "2.0.0"),
		pkg("b/core", "core", "2.0.0"),
	)

	for range 2 {
		res, err := resolver.Resolve(catalog, addon.Hash, nil)
		require.NoError(t, err)
		got, _ := res.Resolution.Get("core")
		assert.Equal(t, "a/core/", got.Directory)
	}
}

func TestResolve_MinVersionBoundary(t *testing.T) {
	addon := pkg("addon", "addon", "1.0.0", dep{"core", "1.0.0"})
	catalog := catalogOf(addon, pkg("core", "core", "1.0.0"))

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)

	got, ok := res.Resolution.Get("core")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", got.Version)
}

func TestResolve_InsufficientVersion(t *testing.T) {
	addon := pkg("addon", "addon", "1.0.0", dep{"core", "2.0.0"})
	catalog := catalogOf(addon, pkg("core", "core", "1.5.0"))

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.IssueInsufficientVersion, res.Issues[0].Kind)
	assert.Equal(t, "addon", res.Issues[0].Owner)
	_, ok := res.Resolution.Get("core")
	assert.False(t, ok)
	assert.ErrorContains(t, res.Err(), domain.ErrInsufficientVersion.Error())
}

func TestResolve_AccumulatesAllIssues(t *testing.T) {
	addon := pkg("addon", "addon", "1.0.0",
		dep{"missing", ""},
		dep{"core", "9.0"},
		dep{"ui", ""},
	)
	catalog := catalogOf(
		addon,
		pkg("core", "core", "1.0"),
		pkg("ui", "ui", "1.0", dep{"also-missing", ""}),
	)

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)

	kinds := make([]domain.IssueKind, 0, len(res.Issues))
	for _, issue := range res.Issues {
		kinds = append(kinds, issue.Kind)
	}
	assert.Equal(t, []domain.IssueKind{
		domain.IssueNotFound,
		domain.IssueInsufficientVersion,
		domain.IssueNotFound,
	}, kinds)
	assert.Equal(t, "also-missing", res.Issues[2].Dependency)
	assert.Equal(t, "ui", res.Issues[2].Owner)
}

func TestResolve_TransitiveOrder(t *testing.T) {
	addon := pkg("addon", "addon", "1.0", dep{"ui", ""}, dep{"core", ""})
	catalog := catalogOf(
		addon,
		pkg("ui", "ui", "1.0", dep{"core", ""}),
		pkg("core", "core", "1.0"),
	)

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)
	require.NoError(t, res.Err())

	names := make([]string, 0, 2)
	for _, e := range res.Resolution.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"ui", "core"}, names)
}

func TestResolve_OverrideBypassesSearch(t *testing.T) {
	addon := pkg("addon", "addon", "1.0", dep{"core", "1.0"})
	old := pkg("core-old", "core", "1.0")
	catalog := catalogOf(addon, old, pkg("core-new", "core", "3.0"))

	t.Run("by hash", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, addon.Hash, domain.Selection{"core": {Hash: old.Hash}})
		require.NoError(t, err)
		got, _ := res.Resolution.Get("core")
		assert.Equal(t, "core-old/", got.Directory)
		assert.True(t, got.Overridden)
	})

	t.Run("by directory", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, addon.Hash, domain.Selection{"core": {Directory: "core-old"}})
		require.NoError(t, err)
		got, _ := res.Resolution.Get("core")
		assert.Equal(t, "core-old/", got.Directory)
	})

	t.Run("archive", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, addon.Hash, domain.Selection{"core": {Directory: "dist/core.tar.gz"}})
		require.NoError(t, err)
		got, _ := res.Resolution.Get("core")
		assert.Equal(t, "dist/core.tar.gz", got.Directory)
		assert.Empty(t, got.Hash)
	})

	t.Run("unknown hash", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, addon.Hash, domain.Selection{"core": {Hash: "nope"}})
		require.NoError(t, err)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, domain.IssueNotFound, res.Issues[0].Kind)
	})
}

func TestResolve_CycleTerminates(t *testing.T) {
	a := pkg("a", "a", "1.0", dep{"b", ""})
	b := pkg("b", "b", "1.0", dep{"a", ""})
	catalog := catalogOf(a, b)

	res, err := resolver.Resolve(catalog, a.Hash, nil)
	require.NoError(t, err)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.IssueCycle, res.Issues[0].Kind)
	assert.Equal(t, "a -> b -> a", res.Issues[0].Cycle)

	zErr, ok := res.Issues[0].Err().(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "a -> b -> a", zErr.Metadata()["cycle"])
}

func TestResolve_DiamondIsNotACycle(t *testing.T) {
	addon := pkg("addon", "addon", "1.0", dep{"left", ""}, dep{"right", ""})
	catalog := catalogOf(
		addon,
		pkg("left", "left", "1.0", dep{"core", ""}),
		pkg("right", "right", "1.0", dep{"core", ""}),
		pkg("core", "core", "1.0"),
	)

	res, err := resolver.Resolve(catalog, addon.Hash, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)
	assert.Equal(t, 3, res.Resolution.Len())
}

func TestResolve_UnknownRoot(t *testing.T) {
	_, err := resolver.Resolve(catalogOf(), "missing", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageNotFound.Error())
}

func TestLocate(t *testing.T) {
	core1 := pkg("core-1", "core", "1.0")
	core2 := pkg("core-2", "core", "2.0")
	catalog := catalogOf(core1, core2)

	t.Run("latest", func(t *testing.T) {
		loc, err := resolver.Locate(catalog, "/src", "core", "", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.UnbuiltPackage{Package: core2}, loc)
	})

	t.Run("override wins over newer", func(t *testing.T) {
		loc, err := resolver.Locate(catalog, "/src", "core", "", domain.Selection{"core": {Hash: core1.Hash}})
		require.NoError(t, err)
		assert.Equal(t, domain.UnbuiltPackage{Package: core1}, loc)
	})

	t.Run("built archive", func(t *testing.T) {
		root := t.TempDir()
		archive := filepath.Join(root, "dist", "core.tar.gz")
		require.NoError(t, os.MkdirAll(filepath.Dir(archive), domain.DirPerm))
		require.NoError(t, os.WriteFile(archive, []byte("gz"), domain.FilePerm))

		loc, err := resolver.Locate(catalog, root, "core", "", domain.Selection{"core": {Directory: "dist/core.tar.gz"}})
		require.NoError(t, err)
		assert.Equal(t, domain.BuiltArchive{Path: archive}, loc)
	})

	t.Run("missing archive", func(t *testing.T) {
		_, err := resolver.Locate(catalog, t.TempDir(), "core", "", domain.Selection{"core": {Directory: "core.tar.gz"}})
		assert.ErrorContains(t, err, domain.ErrDependencyNotFound.Error())
	})

	t.Run("too old", func(t *testing.T) {
		_, err := resolver.Locate(catalog, "/src", "core", "3.0", nil)
		assert.ErrorContains(t, err, domain.ErrInsufficientVersion.Error())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := resolver.Locate(catalog, "/src", "ui", "", nil)
		assert.ErrorContains(t, err, domain.ErrDependencyNotFound.Error())
	})
}
