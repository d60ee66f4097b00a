package ports

import (
	"context"

	"go.iioon.dev/iioon/internal/core/domain"
)

// ShellFactory materializes a shell descriptor into a concrete
// environment for the current platform.
//
//go:generate mockgen -source=shell_factory.go -destination=mocks/mock_shell_factory.go -package=mocks
type ShellFactory interface {
	// Environment returns environment variables as sorted "KEY=VALUE"
	// strings suitable for process execution.
	Environment(ctx context.Context, desc domain.ShellDescriptor) ([]string, error)
}
