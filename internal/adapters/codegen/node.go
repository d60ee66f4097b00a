package codegen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the code generator Graft node.
const NodeID graft.ID = "adapter.codegen"

func init() {
	graft.Register(graft.Node[ports.CodeGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CodeGenerator, error) {
			return NewGenerator(), nil
		},
	})
}
