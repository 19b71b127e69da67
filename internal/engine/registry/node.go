package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pb/internal/adapters/cache"
	"go.trai.ch/pb/internal/adapters/descriptor"
	"go.trai.ch/pb/internal/adapters/fs"
	"go.trai.ch/pb/internal/adapters/logger"
	"go.trai.ch/pb/internal/core/ports"
)

// NodeID is the unique identifier for the package registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			descriptor.NodeID,
			fs.FilterNodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			descriptors, err := graft.Dep[ports.DescriptorReader](ctx)
			if err != nil {
				return nil, err
			}
			filters, err := graft.Dep[ports.FilterCompiler](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(descriptors, filters, cacheStore, log), nil
		},
	})
}
