package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pb/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor reader Graft node.
const NodeID graft.ID = "adapter.descriptor"

func init() {
	graft.Register(graft.Node[ports.DescriptorReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorReader, error) {
			return NewReader(), nil
		},
	})
}
