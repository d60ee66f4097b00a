package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/adapters/nix"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nix.ResolverNodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver), nil
		},
	})
}
