package ports

import (
	"context"
	"io"

	"go.iioon.dev/iioon/internal/core/domain"
)

// ShellRunner spawns processes inside a materialized shell environment.
//
//go:generate mockgen -source=shell_runner.go -destination=mocks/mock_shell_runner.go -package=mocks
type ShellRunner interface {
	// Enter spawns an interactive shell wired to stdin and stdout through
	// a PTY and blocks until the shell exits.
	Enter(ctx context.Context, desc domain.ShellDescriptor, env []string, stdin io.Reader, stdout io.Writer) error

	// Run executes a single command inside the environment, streaming its
	// combined output to stdout, and blocks until it exits.
	Run(ctx context.Context, command []string, env []string, dir string, stdout io.Writer) error
}
