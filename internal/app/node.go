package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pb/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/sqlite"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/pb/internal/engine/builder"
	"go.trai.ch/pb/internal/engine/registry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sqlite.NodeID,
			registry.NodeID,
			builder.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			metrics.NodeID,
			progrock.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalogs, err := graft.Dep[ports.CatalogOpener](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	records, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, catalogs, reg, b, records, hasher, m, telemetry, w, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
