package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	filewatcher "go.iioon.dev/iioon/internal/adapters/watcher"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
)

// GenOptions configures the Generate operation.
type GenOptions struct {
	// Watch keeps running and regenerates when the locale folder changes.
	Watch bool

	// Package is the package name of the generated file. Empty uses the
	// generator's default.
	Package string

	// Output is the path of the generated file, relative to the project
	// root. Empty uses the default filename at the root.
	Output string
}

// Generate renders the locale catalog into typed accessors. A folder
// whose content is unchanged since the last recorded generation is
// skipped.
func (a *App) Generate(ctx context.Context, opts GenOptions) error {
	manifest, _, err := a.deps.Manifests.Load(".")
	if err != nil {
		return err
	}

	folder := filepath.Join(manifest.Root, manifest.Locales.Folder)

	output := opts.Output
	if output == "" {
		output = domain.DefaultGenFileName
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(manifest.Root, output)
	}

	if err := a.generateOnce(manifest.Root, folder, output, opts.Package, manifest.Locales.Fallback); err != nil {
		return err
	}

	if !opts.Watch {
		return nil
	}
	return a.watchAndRegenerate(ctx, manifest.Root, folder, output, opts.Package, manifest.Locales.Fallback)
}

func (a *App) generateOnce(root, folder, output, pkg, fallback string) error {
	fingerprint, fpErr := a.deps.Fingerprinter.FingerprintDir(folder)
	if fpErr == nil {
		info, err := a.deps.Store.Get(root, folder)
		if err == nil && info.Matches(fingerprint, output, pkg) {
			a.deps.Logger.Info("accessors up to date")
			return nil
		}
	}

	catalog, err := a.deps.Catalogs.Load(folder, fallback)
	if err != nil {
		return err
	}

	source, err := a.deps.Generator.Generate(catalog, ports.GenerateOptions{Package: pkg})
	if err != nil {
		return err
	}

	if err := atomicWrite(output, source); err != nil {
		return err
	}

	if fpErr == nil {
		// A stale record only costs one redundant regeneration.
		_ = a.deps.Store.Put(root, domain.GenInfo{
			Folder:      folder,
			Fingerprint: fingerprint,
			Output:      output,
			Package:     pkg,
			GeneratedAt: time.Now().UTC(),
		})
	}

	a.deps.Logger.Info("generated " + output)
	return nil
}

func (a *App) watchAndRegenerate(ctx context.Context, root, folder, output, pkg, fallback string) error {
	if err := a.deps.Watcher.Start(ctx, folder); err != nil {
		return err
	}
	defer func() { _ = a.deps.Watcher.Stop() }()

	regen := make(chan struct{}, 1)
	debouncer := filewatcher.NewDebouncer(filewatcher.DefaultDebounceWindow, func([]string) {
		select {
		case regen <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.deps.Watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	// Prime the cache so only future changes trigger regeneration.
	_, _ = a.deps.Fingerprints.Changed(folder)

	a.deps.Logger.Info("watching " + folder)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-regen:
			changed, err := a.deps.Fingerprints.Changed(folder)
			if err != nil {
				a.deps.Logger.Error(err)
				continue
			}
			if !changed {
				continue
			}
			if err := a.generateOnce(root, folder, output, pkg, fallback); err != nil {
				// Watch mode survives bad intermediate states, the next
				// change gets another attempt.
				a.deps.Logger.Error(err)
			}
		}
	}
}

// atomicWrite writes data via a temp file and rename so readers never
// observe a half-written file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}

	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}
	return nil
}
