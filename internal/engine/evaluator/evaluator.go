// Package evaluator turns a loaded manifest and shell definition into the
// concrete per-platform shell set.
package evaluator

import (
	"context"
	"sync"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Evaluator builds shell sets. It owns platform enumeration and input
// pinning; the actual environment materialization stays behind the
// ShellFactory port.
type Evaluator struct {
	resolver ports.InputResolver
}

// New creates an Evaluator using the given input resolver.
func New(resolver ports.InputResolver) *Evaluator {
	return &Evaluator{resolver: resolver}
}

// Platforms enumerates the platforms a manifest exposes: the intersection
// of its declared systems with the supported set. A manifest without a
// systems section exposes every supported platform.
func (e *Evaluator) Platforms(manifest *domain.Manifest) []domain.Platform {
	exposed := manifest.Systems
	if len(exposed) == 0 {
		exposed = domain.SupportedPlatforms
	}
	return domain.IntersectPlatforms(exposed, domain.SupportedPlatforms)
}

// Evaluate resolves the manifest's inputs and produces one default shell
// descriptor per enumerated platform. An empty platform intersection
// yields an empty set, not an error.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	manifest *domain.Manifest,
	shellDef *domain.ShellDef,
) (*domain.ShellSet, error) {
	if shellDef == nil {
		return nil, zerr.With(domain.ErrShellDefNotFound, "shell_file", manifest.ShellFile)
	}

	pins, err := e.resolveInputs(ctx, manifest)
	if err != nil {
		return nil, err
	}

	var packagePin domain.Pin
	if len(shellDef.Packages) > 0 {
		pin, ok := pins[domain.PackageInputName]
		if !ok {
			return nil, domain.ErrMissingPackageInput
		}
		packagePin = pin
	}

	set := domain.NewShellSet()
	for _, platform := range e.Platforms(manifest) {
		set.Add(domain.ShellDescriptor{
			Platform:   platform,
			Name:       domain.DefaultShellName,
			PackagePin: packagePin,
			Packages:   shellDef.Packages,
			Env:        shellDef.Env,
			MOTD:       shellDef.MOTD,
		})
	}

	return set, nil
}

// resolveInputs pins every declared input concurrently.
func (e *Evaluator) resolveInputs(
	ctx context.Context,
	manifest *domain.Manifest,
) (map[string]domain.Pin, error) {
	pins := make(map[string]domain.Pin, len(manifest.Inputs))
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	for _, input := range manifest.Inputs {
		g.Go(func() error {
			pin, err := e.resolver.Resolve(groupCtx, input)
			if err != nil {
				return zerr.With(err, "input", input.Name)
			}

			mu.Lock()
			pins[input.Name] = pin
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pins, nil
}
