package app

import (
	"context"
	"fmt"

	"go.iioon.dev/iioon/internal/adapters/daemon"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.iioon.dev/iioon/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// ShellOptions configures the Shell operation.
type ShellOptions struct {
	// Platform overrides the host platform.
	Platform string

	// Enter spawns an interactive shell instead of printing the
	// environment.
	Enter bool

	NoDaemon   bool
	OutputMode string
}

// Shell materializes the default shell for a platform and either prints
// its environment or enters it interactively.
func (a *App) Shell(ctx context.Context, opts ShellOptions) error {
	manifest, shellDef, err := a.deps.Manifests.Load(".")
	if err != nil {
		return err
	}

	platform := domain.CurrentPlatform()
	if opts.Platform != "" {
		platform, err = domain.ParsePlatform(opts.Platform)
		if err != nil {
			return err
		}
	}

	ev, release := a.evaluatorFor(ctx, manifest.Root, opts.NoDaemon)
	defer release()

	var (
		desc domain.ShellDescriptor
		env  []string
	)
	err = a.runPipeline(ctx, opts.OutputMode,
		[]string{"resolve inputs", "materialize environment"},
		func(ctx context.Context, tracer ports.Tracer) error {
			var set *domain.ShellSet
			if err := step(ctx, tracer, "resolve inputs", func(ctx context.Context) error {
				var err error
				set, err = ev.Evaluate(ctx, manifest, shellDef)
				return err
			}); err != nil {
				return err
			}

			var ok bool
			desc, ok = set.Default(platform)
			if !ok {
				return zerr.With(domain.ErrShellNotFound, "platform", string(platform))
			}

			return step(ctx, tracer, "materialize environment", func(ctx context.Context) error {
				var err error
				env, err = a.deps.Factory.Environment(ctx, desc)
				return err
			})
		})
	if err != nil {
		return err
	}

	if opts.Enter {
		return a.deps.Runner.Enter(ctx, desc, env, a.stdin, a.stdout)
	}

	for _, kv := range env {
		fmt.Fprintln(a.stdout, kv)
	}
	return nil
}

// Platforms prints the platforms the manifest exposes, one per line.
func (a *App) Platforms(_ context.Context) error {
	manifest, _, err := a.deps.Manifests.Load(".")
	if err != nil {
		return err
	}

	for _, platform := range a.deps.Evaluator.Platforms(manifest) {
		fmt.Fprintln(a.stdout, string(platform))
	}
	return nil
}

// evaluatorFor returns the evaluator to use for one operation: the
// daemon-backed one when a daemon is reachable, the local one otherwise.
func (a *App) evaluatorFor(ctx context.Context, root string, noDaemon bool) (*evaluator.Evaluator, func()) {
	if noDaemon || a.deps.Connector == nil {
		return a.deps.Evaluator, func() {}
	}

	client, err := a.deps.Connector.Connect(ctx, root)
	if err != nil {
		a.deps.Logger.Warn("daemon unavailable, resolving locally")
		return a.deps.Evaluator, func() {}
	}

	resolver := daemon.NewCachedResolver(client, a.deps.Resolver)
	return evaluator.New(resolver), func() { _ = client.Close() }
}
