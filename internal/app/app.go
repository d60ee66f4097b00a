// Package app implements the application layer for iioon.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.iioon.dev/iioon/internal/adapters/detector"
	"go.iioon.dev/iioon/internal/adapters/linear"
	"go.iioon.dev/iioon/internal/adapters/telemetry"
	"go.iioon.dev/iioon/internal/adapters/tui"
	filewatcher "go.iioon.dev/iioon/internal/adapters/watcher"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.iioon.dev/iioon/internal/engine/evaluator"
	"golang.org/x/sync/errgroup"
)

// Deps bundles everything the App drives. All fields are required
// unless noted otherwise.
type Deps struct {
	Manifests     ports.ManifestLoader
	Evaluator     *evaluator.Evaluator
	Factory       ports.ShellFactory
	Runner        ports.ShellRunner
	Catalogs      ports.CatalogLoader
	Generator     ports.CodeGenerator
	Store         ports.GenInfoStore
	Fingerprinter ports.Fingerprinter
	Fingerprints  *filewatcher.FingerprintCache
	Watcher       ports.Watcher
	Resolver      ports.InputResolver

	// Connector may be nil; the resolver then always runs locally.
	Connector ports.DaemonConnector

	Logger ports.Logger
}

// App exposes the CLI operations.
type App struct {
	deps Deps

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	teaOptions []tea.ProgramOption
}

// New creates an App wired to the standard streams.
func New(deps Deps) *App {
	return &App{
		deps:   deps,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams overrides the standard streams. Used by tests.
func (a *App) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options. Used by tests to run
// the TUI headless.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// runPipeline runs work under a renderer matching the output mode. The
// worker gets a tracer whose spans feed the renderer; the renderer owns
// the terminal until the worker finishes.
func (a *App) runPipeline(
	ctx context.Context,
	outputMode string,
	plan []string,
	work func(ctx context.Context, tracer ports.Tracer) error,
) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, opts...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	bridge := telemetry.NewBridge(renderer)
	provider := telemetry.NewTracerProvider(bridge)

	tracer := telemetry.NewOTelTracer("iioon").
		WithRenderer(renderer).
		WithProvider(provider)
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(a.stderr, "pipeline panic: %v\n", r)
			}
			_ = renderer.Stop()
		}()

		tracer.EmitPlan(gctx, plan)
		return work(gctx, tracer)
	})

	return g.Wait()
}

// step traces fn as one named span.
func step(ctx context.Context, tracer ports.Tracer, name string, fn func(ctx context.Context) error) error {
	stepCtx, span := tracer.Start(ctx, name)
	err := fn(stepCtx)
	span.End(err)
	return err
}
