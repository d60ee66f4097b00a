package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/adapters/logger"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the shell runner Graft node.
const NodeID graft.ID = "adapter.shell_runner"

func init() {
	graft.Register(graft.Node[ports.ShellRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ShellRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
