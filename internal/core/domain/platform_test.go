package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/core/domain"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "linux amd64", token: "x86_64-linux"},
		{name: "darwin arm64", token: "aarch64-darwin"},
		{name: "missing os", token: "x86_64", wantErr: true},
		{name: "empty arch", token: "-linux", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.ParsePlatform(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Platform(tt.token), p)
		})
	}
}

func TestIntersectPlatforms(t *testing.T) {
	supported := []domain.Platform{
		"x86_64-linux", "aarch64-linux", "x86_64-darwin", "aarch64-darwin",
	}

	t.Run("result is subset of both sets", func(t *testing.T) {
		exposed := []domain.Platform{"x86_64-linux", "riscv64-linux", "aarch64-darwin"}
		got := domain.IntersectPlatforms(exposed, supported)

		assert.Equal(t, []domain.Platform{"aarch64-darwin", "x86_64-linux"}, got)
		for _, p := range got {
			assert.Contains(t, exposed, p)
			assert.Contains(t, supported, p)
		}
	})

	t.Run("empty exposed set yields empty result", func(t *testing.T) {
		got := domain.IntersectPlatforms(nil, supported)
		assert.Empty(t, got)
	})

	t.Run("disjoint sets yield empty result", func(t *testing.T) {
		exposed := []domain.Platform{"riscv64-linux", "wasm32-wasi"}
		got := domain.IntersectPlatforms(exposed, supported)
		assert.Empty(t, got)
	})

	t.Run("duplicates are removed", func(t *testing.T) {
		exposed := []domain.Platform{"x86_64-linux", "x86_64-linux"}
		got := domain.IntersectPlatforms(exposed, supported)
		assert.Equal(t, []domain.Platform{"x86_64-linux"}, got)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		exposed := []domain.Platform{"aarch64-linux", "x86_64-linux", "x86_64-darwin"}
		first := domain.IntersectPlatforms(exposed, supported)
		for range 10 {
			assert.Equal(t, first, domain.IntersectPlatforms(exposed, supported))
		}
	})
}

func TestCurrentPlatform(t *testing.T) {
	p := domain.CurrentPlatform()
	_, err := domain.ParsePlatform(string(p))
	require.NoError(t, err)
}
