package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/metrics"
	"go.trai.ch/pb/internal/core/domain"
)

func TestRecorder_Gather(t *testing.T) {
	reg := prom.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveBuild("com.example.core", 0.25, "success")
	r.ObserveBuild("com.example.addon", 0.5, "failed")
	r.IncResolutionIssue(string(domain.IssueNotFound))
	r.SetCatalogSize("community", 12)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"pb_package_build_duration_seconds",
		"pb_package_builds_total",
		"pb_resolution_issues_total",
		"pb_catalog_packages",
	}, names)
}

func TestRecorder_ReusedArchivesHaveNoDuration(t *testing.T) {
	r := metrics.NewRecorder(nil)
	r.ObserveBuild("com.example.core", 0, string(domain.VertexStatusCached))
	r.ObserveBuild("com.example.ui", 0, string(domain.VertexStatusSkipped))

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, r.Flush(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pb_package_builds_total{outcome="cached",package="com.example.core"} 1`)
	assert.Contains(t, string(data), `pb_package_builds_total{outcome="skipped",package="com.example.ui"} 1`)
	assert.NotContains(t, string(data), "pb_package_build_duration_seconds_count")
}

func TestRecorder_Flush(t *testing.T) {
	r := metrics.NewRecorder(nil)
	r.SetCatalogSize("community", 3)

	path := filepath.Join(t.TempDir(), ".pb", "metrics.prom")
	require.NoError(t, r.Flush(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pb_catalog_packages{source="community"} 3`)
}

func TestRecorder_FlushDisabled(t *testing.T) {
	require.NoError(t, metrics.NewRecorder(nil).Flush(""))
}
