package ports

import (
	"context"

	"go.trai.ch/pb/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of package builds.
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log records a message against the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as satisfied by earlier work.
	Cached()
}

// Metrics records build and scan measurements.
type Metrics interface {
	// ObserveBuild records the duration and outcome of one package build.
	ObserveBuild(pkg string, seconds float64, outcome string)
	// IncResolutionIssue counts one resolution problem of the given kind.
	IncResolutionIssue(kind string)
	// SetCatalogSize records the package count of a scanned source.
	SetCatalogSize(source string, packages int)
	// Flush writes the collected metrics to the textfile at path.
	Flush(path string) error
}
