package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pb/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// FilterNodeID is the unique identifier for the filter compiler Graft node.
	FilterNodeID graft.ID = "adapter.fs.filter"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.FilterCompiler]{
		ID:        FilterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FilterCompiler, error) {
			return NewFilterCompiler(), nil
		},
	})
}
