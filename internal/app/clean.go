package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions selects which caches Clean removes.
type CleanOptions struct {
	Inputs bool
	Envs   bool
}

// Clean removes the selected cache directories under the project root.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root, err := a.deps.Manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	var errs error
	remove := func(rel, name string) {
		path := filepath.Join(root, rel)
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to remove "+name))
			return
		}
		a.deps.Logger.Info("removed " + name)
	}

	if opts.Inputs {
		remove(domain.DefaultPinCachePath(), "input pin cache")
	}
	if opts.Envs {
		remove(domain.DefaultEnvCachePath(), "environment cache")
	}

	return errs
}
