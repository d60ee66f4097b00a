// Package config loads and validates the project manifest and the shell
// definition file it names.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader on top of a FileSystem.
type Loader struct {
	fs     FileSystem
	logger ports.Logger
}

// NewLoader creates a Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a Loader with an injected filesystem. Used by
// tests to load from an in-memory tree.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// DiscoverRoot walks up from cwd until it finds a directory containing
// the manifest file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ManifestFileName)
		if _, err := l.fs.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load discovers the manifest from cwd, parses and validates it, then
// parses the shell definition file it names. A missing shell file is not
// an error: the returned ShellDef is nil and shell operations fail later
// with context.
func (l *Loader) Load(cwd string) (*domain.Manifest, *domain.ShellDef, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, nil, err
	}

	raw, err := l.fs.ReadFile(filepath.Join(root, domain.ManifestFileName))
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	manifest, err := l.buildManifest(root, &mf)
	if err != nil {
		return nil, nil, err
	}

	shellDef, err := l.loadShellDef(manifest)
	if err != nil {
		return nil, nil, err
	}

	return manifest, shellDef, nil
}

func (l *Loader) buildManifest(root string, mf *manifestFile) (*domain.Manifest, error) {
	manifest := &domain.Manifest{
		Version: mf.Version,
		Root:    resolveRoot(root, mf.Root),
		Locales: domain.LocaleConfig{
			Folder:   mf.Locales.Folder,
			Fallback: mf.Locales.Fallback,
		},
		ShellFile: mf.Shell,
	}

	if manifest.Locales.Folder == "" {
		manifest.Locales.Folder = "locales"
	}
	if manifest.ShellFile == "" {
		manifest.ShellFile = domain.DefaultShellFileName
	}

	inputs, err := buildInputs(mf.Inputs)
	if err != nil {
		return nil, err
	}
	manifest.Inputs = inputs

	systems, err := buildSystems(mf.Systems)
	if err != nil {
		return nil, err
	}
	manifest.Systems = systems

	return manifest, nil
}

// buildInputs converts the YAML input map into a sorted slice so that
// downstream iteration is deterministic.
func buildInputs(raw map[string]string) ([]domain.InputSource, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	inputs := make([]domain.InputSource, 0, len(names))
	for _, name := range names {
		locator := raw[name]
		if locator == "" {
			return nil, zerr.With(domain.ErrEmptyInputLocator, "input", name)
		}
		inputs = append(inputs, domain.InputSource{Name: name, Locator: locator})
	}

	return inputs, nil
}

// buildSystems validates the declared platform tokens. Unknown but
// well-formed tokens are kept: enumeration intersects them against the
// supported set instead of rejecting them here.
func buildSystems(raw []string) ([]domain.Platform, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	systems := make([]domain.Platform, 0, len(raw))
	for _, token := range raw {
		p, err := domain.ParsePlatform(token)
		if err != nil {
			return nil, err
		}
		systems = append(systems, p)
	}

	return systems, nil
}

func (l *Loader) loadShellDef(manifest *domain.Manifest) (*domain.ShellDef, error) {
	path := manifest.ShellFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(manifest.Root, path)
	}

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrShellDefParseFailed.Error())
	}

	var sf shellFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		err = zerr.Wrap(err, domain.ErrShellDefParseFailed.Error())
		return nil, zerr.With(err, "file", manifest.ShellFile)
	}

	return &domain.ShellDef{
		Packages: sf.Packages,
		Env:      sf.Env,
		MOTD:     sf.MOTD,
	}, nil
}

// resolveRoot resolves the manifest's configured root against the
// directory the manifest was found in.
func resolveRoot(manifestDir, configuredRoot string) string {
	if configuredRoot == "" {
		return filepath.Clean(manifestDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(manifestDir, configuredRoot))
}
