// Package telemetry provides telemetry implementations that record nothing.
package telemetry

import (
	"context"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
)

var (
	_ ports.Telemetry = (*NoOp)(nil)
	_ ports.Vertex    = (*NoOpVertex)(nil)
	_ ports.Metrics   = (*NoOpMetrics)(nil)
)

// NoOp is a ports.Telemetry that discards everything.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that does nothing.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// NoOpMetrics is a no-op implementation of ports.Metrics.
type NoOpMetrics struct{}

// ObserveBuild does nothing.
func (m *NoOpMetrics) ObserveBuild(_ string, _ float64, _ string) {}

// IncResolutionIssue does nothing.
func (m *NoOpMetrics) IncResolutionIssue(_ string) {}

// SetCatalogSize does nothing.
func (m *NoOpMetrics) SetCatalogSize(_ string, _ int) {}

// Flush does nothing.
func (m *NoOpMetrics) Flush(_ string) error { return nil }
