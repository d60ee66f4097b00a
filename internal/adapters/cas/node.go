package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the generation info store Graft node.
const NodeID graft.ID = "adapter.gen_info_store"

func init() {
	graft.Register(graft.Node[ports.GenInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GenInfoStore, error) {
			return NewStore(), nil
		},
	})
}
