package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		shellEnv []string
		expected []string
	}{
		{
			name:     "system only allowed",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "system only filtered",
			sysEnv:   []string{"USER=test", "SSH_AUTH_SOCK=/tmp/ssh", "SECRET=key"},
			expected: []string{"USER=test"},
		},
		{
			name:     "shell env without PATH",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			shellEnv: []string{"GOPATH=/go"},
			expected: []string{"GOPATH=/go", "PATH=/bin", "USER=test"},
		},
		{
			name:     "shell PATH prepends",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			shellEnv: []string{"PATH=/nix/bin", "CC=gcc"},
			expected: []string{"CC=gcc", "PATH=/nix/bin" + string(os.PathListSeparator) + "/bin", "USER=test"},
		},
		{
			name:     "shell PATH without system PATH",
			sysEnv:   []string{"USER=test"},
			shellEnv: []string{"PATH=/nix/bin"},
			expected: []string{"PATH=/nix/bin", "USER=test"},
		},
		{
			name:     "shell env overrides allowed system vars",
			sysEnv:   []string{"USER=host", "PATH=/bin"},
			shellEnv: []string{"USER=shell"},
			expected: []string{"PATH=/bin", "USER=shell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveEnvironment(tt.sysEnv, tt.shellEnv)
			sort.Strings(got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

	t.Run("found on merged PATH", func(t *testing.T) {
		got, err := lookPath("tool", []string{"PATH=" + dir})
		require.NoError(t, err)
		assert.Equal(t, script, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := lookPath("missing-tool", []string{"PATH=" + dir})
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("no PATH entry", func(t *testing.T) {
		_, err := lookPath("tool", nil)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("not executable", func(t *testing.T) {
		plain := filepath.Join(dir, "data")
		require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))

		_, err := lookPath("data", []string{"PATH=" + dir})
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})
}
