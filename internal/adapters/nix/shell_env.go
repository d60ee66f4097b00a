package nix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// ShellEnv implements ports.ShellFactory. It materializes a shell
// descriptor through `nix print-dev-env` and caches the resulting
// variables keyed by the descriptor's deterministic ID.
type ShellEnv struct {
	cacheDir     string
	requestGroup singleflight.Group
}

// NewShellEnv creates a ShellEnv with the default cache location.
func NewShellEnv() *ShellEnv {
	return NewShellEnvWithCache(domain.DefaultEnvCachePath())
}

// NewShellEnvWithCache creates a ShellEnv with a specific cache directory.
func NewShellEnvWithCache(cacheDir string) *ShellEnv {
	return &ShellEnv{cacheDir: cacheDir}
}

// Environment materializes the descriptor into sorted "KEY=VALUE" pairs.
// Concurrent requests for the same descriptor share one evaluation.
func (s *ShellEnv) Environment(ctx context.Context, desc domain.ShellDescriptor) ([]string, error) {
	if len(desc.Packages) > 0 && desc.PackagePin.Revision == "" {
		return nil, zerr.With(domain.ErrMissingPackageInput, "platform", string(desc.Platform))
	}

	shellID := domain.GenerateShellID(desc)

	result, err, _ := s.requestGroup.Do(shellID, func() (any, error) {
		cachePath := filepath.Join(s.cacheDir, shellID+".json")
		if cachedEnv, err := LoadEnvFromCache(cachePath); err == nil {
			return cachedEnv, nil
		}

		env, err := s.evaluate(ctx, desc)
		if err != nil {
			return nil, err
		}

		// Cache write failures are not fatal.
		_ = SaveEnvToCache(cachePath, env)

		return env, nil
	})
	if err != nil {
		return nil, err
	}

	env := slices.Clone(result.([]string))

	// Force temp directories to the system default so transient nix
	// build directories do not leak into spawned processes.
	tmpDir := "/tmp"
	env = append(env,
		"TMPDIR="+tmpDir,
		"TEMP="+tmpDir,
		"TMP="+tmpDir,
	)

	slices.Sort(env)

	return env, nil
}

// evaluate runs nix print-dev-env over the generated expression and
// merges the descriptor's own env entries on top.
func (s *ShellEnv) evaluate(ctx context.Context, desc domain.ShellDescriptor) ([]string, error) {
	var env []string

	if len(desc.Packages) > 0 {
		expr, err := generateShellExpr(desc)
		if err != nil {
			return nil, err
		}

		tmpPath, cleanupFn, err := createNixTempFile(expr)
		if err != nil {
			return nil, err
		}
		defer cleanupFn()

		//nolint:gosec // tmpPath is a trusted temp file created by us
		cmd := exec.CommandContext(ctx, "nix", "print-dev-env", "--json", "--file", tmpPath)
		output, err := cmd.Output()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrShellBuildFailed.Error())
		}

		env, err = ParseDevEnv(output)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrShellBuildFailed.Error())
		}
	}

	// Descriptor env entries come last so they win over nix-provided
	// values with the same key.
	env = mergeEnv(env, desc.Env)
	slices.Sort(env)

	return env, nil
}

// generateShellExpr renders the nix expression for one descriptor: the
// pinned package collection specialized to the descriptor's platform,
// wrapped in a mkShell with the declared packages. The flake reference
// keeps the pin's owner and repository, so forks of the package
// collection materialize from the fork, not from upstream.
func generateShellExpr(desc domain.ShellDescriptor) (string, error) {
	loc, err := ParseLocator(desc.PackagePin.Locator)
	if err != nil {
		return "", zerr.With(err, "input", desc.PackagePin.Input)
	}

	var builder strings.Builder

	builder.WriteString("let\n")
	builder.WriteString(fmt.Sprintf("system = %q;\n", string(desc.Platform)))
	builder.WriteString(fmt.Sprintf("flake = builtins.getFlake \"github:%s/%s/%s\";\n",
		loc.Owner, loc.Repo, desc.PackagePin.Revision))
	builder.WriteString("pkgs = flake.legacyPackages.${system};\n")
	builder.WriteString("in\n")
	builder.WriteString("pkgs.mkShell {\n")
	builder.WriteString("buildInputs = [\n")

	packages := slices.Clone(desc.Packages)
	slices.Sort(packages)
	for _, pkg := range packages {
		builder.WriteString(fmt.Sprintf("pkgs.%s\n", pkg))
	}

	builder.WriteString("];\n")
	builder.WriteString("}\n")

	return builder.String(), nil
}

// mergeEnv overlays extra entries onto env, replacing same-key pairs.
func mergeEnv(env []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return env
	}

	merged := make([]string, 0, len(env)+len(extra))
	for _, pair := range env {
		key, _, _ := strings.Cut(pair, "=")
		if _, overridden := extra[key]; overridden {
			continue
		}
		merged = append(merged, pair)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+extra[k])
	}

	return merged
}

// createNixTempFile writes a nix expression to a temp file.
func createNixTempFile(expr string) (tmpPath string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "iioon-shell-*.nix")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create temp nix file")
	}

	tmpPath = tmpFile.Name()
	cleanup = func() {
		_ = os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.WriteString(expr); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, zerr.Wrap(writeErr, "failed to write nix expression")
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, zerr.Wrap(closeErr, "failed to close temp nix file")
	}

	return tmpPath, cleanup, nil
}

// LoadEnvFromCache attempts to load a cached environment.
func LoadEnvFromCache(path string) ([]string, error) {
	//nolint:gosec // Path is constructed from trusted cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, "failed to read cache file")
	}

	var env []string
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal cache")
	}

	return env, nil
}

// SaveEnvToCache saves an environment to the cache.
func SaveEnvToCache(path string, env []string) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal environment")
	}

	if err := atomicWriteFile(path, data, "env-cache-*.json"); err != nil {
		return zerr.Wrap(err, "failed to write cache file")
	}

	return nil
}

// devEnvOutput represents the JSON structure from `nix print-dev-env --json`.
type devEnvOutput struct {
	Variables map[string]devEnvVariable `json:"variables"`
}

type devEnvVariable struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// ParseDevEnv extracts environment variables from nix print-dev-env
// output, filtering out interactive shell state.
func ParseDevEnv(jsonData []byte) ([]string, error) {
	var output devEnvOutput
	if err := json.Unmarshal(jsonData, &output); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal nix output")
	}

	env := make([]string, 0, len(output.Variables))
	for key, variable := range output.Variables {
		if !ShouldIncludeVar(key) {
			continue
		}

		var valueStr string
		switch v := variable.Value.(type) {
		case string:
			valueStr = v
		case []any:
			// Arrays join with colons, matching PATH-like semantics.
			parts := make([]string, len(v))
			for i, part := range v {
				if s, ok := part.(string); ok {
					parts[i] = s
				}
			}
			valueStr = strings.Join(parts, ":")
		default:
			continue
		}

		env = append(env, key+"="+valueStr)
	}

	slices.Sort(env)
	return env, nil
}

// ShouldIncludeVar reports whether an environment variable from the nix
// evaluation belongs in the materialized shell. Interactive shell state
// and the user's identity variables stay with the host.
func ShouldIncludeVar(key string) bool {
	exclude := []string{
		"TERM",
		"SHELL",
		"EDITOR",
		"VISUAL",
		"PAGER",
		"LESS",
		"HOME",
		"USER",
		"LOGNAME",
		"PS1",
		"PS2",
		"SHLVL",
		"PWD",
		"OLDPWD",
		"_",
		"TMPDIR",
		"TEMP",
		"TMP",
		"NIX_BUILD_TOP",
		"NIX_BUILD_CORES",
		"NIX_LOG_FD",
	}

	return !slices.Contains(exclude, key)
}
