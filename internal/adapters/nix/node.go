package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the input resolver Graft node.
	ResolverNodeID graft.ID = "adapter.input_resolver"
	// ShellEnvNodeID is the unique identifier for the shell factory Graft node.
	ShellEnvNodeID graft.ID = "adapter.shell_factory"
)

func init() {
	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputResolver, error) {
			return NewResolver()
		},
	})

	graft.Register(graft.Node[ports.ShellFactory]{
		ID:        ShellEnvNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShellFactory, error) {
			return NewShellEnv(), nil
		},
	})
}
