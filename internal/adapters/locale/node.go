package locale

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the catalog loader Graft node.
const NodeID graft.ID = "adapter.locale"

func init() {
	graft.Register(graft.Node[ports.CatalogLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CatalogLoader, error) {
			return NewLoader(), nil
		},
	})
}
