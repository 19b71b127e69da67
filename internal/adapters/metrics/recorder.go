// Package metrics records build measurements with Prometheus and writes them
// to a node exporter textfile.
package metrics

import (
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "pb"

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics on a private Prometheus registry.
type Recorder struct {
	reg              *prom.Registry
	buildDuration    *prom.HistogramVec
	buildOutcome     *prom.CounterVec
	resolutionIssues *prom.CounterVec
	catalogPackages  *prom.GaugeVec
}

// NewRecorder constructs and registers the metrics on reg. A nil reg gets a fresh registry.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	r := &Recorder{
		reg: reg,
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "package_build_duration_seconds",
			Help:      "Duration of individual package builds",
			Buckets:   prom.DefBuckets,
		}, []string{"package"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "package_builds_total",
			Help:      "Package builds by outcome",
		}, []string{"package", "outcome"}),
		resolutionIssues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_issues_total",
			Help:      "Dependency resolution problems by kind",
		}, []string{"kind"}),
		catalogPackages: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_packages",
			Help:      "Packages found by the last scan of a source",
		}, []string{"source"}),
	}

	reg.MustRegister(r.buildDuration, r.buildOutcome, r.resolutionIssues, r.catalogPackages)
	return r
}

// Registry returns the registry the metrics are registered on.
func (r *Recorder) Registry() *prom.Registry {
	return r.reg
}

// ObserveBuild records the duration and outcome of one package build.
// Reused and shipped archives only count towards the outcome.
func (r *Recorder) ObserveBuild(pkg string, seconds float64, outcome string) {
	switch domain.VertexStatus(outcome) {
	case domain.VertexStatusCached, domain.VertexStatusSkipped:
	default:
		r.buildDuration.WithLabelValues(pkg).Observe(seconds)
	}
	r.buildOutcome.WithLabelValues(pkg, outcome).Inc()
}

// IncResolutionIssue counts one resolution problem.
func (r *Recorder) IncResolutionIssue(kind string) {
	r.resolutionIssues.WithLabelValues(kind).Inc()
}

// SetCatalogSize records the package count of a scanned source.
func (r *Recorder) SetCatalogSize(source string, packages int) {
	r.catalogPackages.WithLabelValues(source).Set(float64(packages))
}

// Flush writes all metrics to the textfile at path. An empty path disables writing.
func (r *Recorder) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	if err := prom.WriteToTextfile(path, r.reg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
