package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pb/internal/adapters/archive"
	"go.trai.ch/pb/internal/adapters/fs"
	"go.trai.ch/pb/internal/adapters/git"
	"go.trai.ch/pb/internal/adapters/logger"
	"go.trai.ch/pb/internal/adapters/metrics"
	"go.trai.ch/pb/internal/adapters/telemetry/progrock"
	"go.trai.ch/pb/internal/core/ports"
)

// NodeID is the unique identifier for the archive builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			archive.NodeID,
			fs.FilterNodeID,
			git.NodeID,
			progrock.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			filters, err := graft.Dep[ports.FilterCompiler](ctx)
			if err != nil {
				return nil, err
			}
			revisions, err := graft.Dep[ports.RevisionReader](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(archiver, filters, revisions, telemetry, recorder, log), nil
		},
	})
}
