package app

import (
	"context"
	"fmt"

	"go.iioon.dev/iioon/internal/adapters/daemon"
	"go.iioon.dev/iioon/internal/core/domain"
)

// ServeDaemon runs the daemon server in the foreground until the idle
// timeout fires or the context is cancelled.
func (a *App) ServeDaemon(ctx context.Context) error {
	root, err := a.deps.Manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	lifecycle := daemon.NewLifecycle(daemon.DefaultIdleTimeout)
	server := daemon.NewServer(lifecycle, a.deps.Resolver, a.deps.Logger)

	a.deps.Logger.Info("daemon listening")
	return server.Serve(ctx, root)
}

// DaemonStatus prints the running daemon's status.
func (a *App) DaemonStatus(ctx context.Context) error {
	root, err := a.deps.Manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	client, err := daemon.Dial(ctx, root)
	if err != nil {
		return domain.ErrDaemonNotRunning
	}
	defer func() { _ = client.Close() }()

	status, err := client.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "daemon running (pid %d)\n", status.PID)
	fmt.Fprintf(a.stdout, "  uptime:            %s\n", status.Uptime)
	fmt.Fprintf(a.stdout, "  last activity:     %s\n", status.LastActivity.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.stdout, "  idle shutdown in:  %s\n", status.IdleRemaining)
	return nil
}

// StopDaemon asks a running daemon to shut down. A daemon that is not
// running is not an error.
func (a *App) StopDaemon(ctx context.Context) error {
	root, err := a.deps.Manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	client, err := daemon.Dial(ctx, root)
	if err != nil {
		a.deps.Logger.Info("daemon is not running")
		return nil
	}
	defer func() { _ = client.Close() }()

	if err := client.Shutdown(ctx); err != nil {
		return err
	}

	a.deps.Logger.Info("daemon stopped")
	return nil
}
