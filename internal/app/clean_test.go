package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/app"
	"go.iioon.dev/iioon/internal/core/domain"
)

func TestClean_RemovesSelectedCaches(t *testing.T) {
	a, td, streams := newTestApp(t, nil)

	root := t.TempDir()
	pinCache := filepath.Join(root, domain.DefaultPinCachePath())
	envCache := filepath.Join(root, domain.DefaultEnvCachePath())
	require.NoError(t, os.MkdirAll(pinCache, 0o750))
	require.NoError(t, os.MkdirAll(envCache, 0o750))

	td.manifests.EXPECT().DiscoverRoot(".").Return(root, nil)

	require.NoError(t, a.Clean(t.Context(), app.CleanOptions{Inputs: true}))

	require.NoDirExists(t, pinCache)
	require.DirExists(t, envCache)
	require.Contains(t, streams.logs.String(), "removed input pin cache")
}

func TestClean_RemovesAllCaches(t *testing.T) {
	a, td, _ := newTestApp(t, nil)

	root := t.TempDir()
	pinCache := filepath.Join(root, domain.DefaultPinCachePath())
	envCache := filepath.Join(root, domain.DefaultEnvCachePath())
	require.NoError(t, os.MkdirAll(pinCache, 0o750))
	require.NoError(t, os.MkdirAll(envCache, 0o750))

	td.manifests.EXPECT().DiscoverRoot(".").Return(root, nil)

	require.NoError(t, a.Clean(t.Context(), app.CleanOptions{Inputs: true, Envs: true}))

	require.NoDirExists(t, pinCache)
	require.NoDirExists(t, envCache)
}

func TestClean_MissingCachesAreFine(t *testing.T) {
	a, td, _ := newTestApp(t, nil)

	td.manifests.EXPECT().DiscoverRoot(".").Return(t.TempDir(), nil)

	require.NoError(t, a.Clean(t.Context(), app.CleanOptions{Inputs: true, Envs: true}))
}

func TestClean_NoRoot(t *testing.T) {
	a, td, _ := newTestApp(t, nil)

	td.manifests.EXPECT().DiscoverRoot(".").Return("", domain.ErrManifestNotFound)

	err := a.Clean(t.Context(), app.CleanOptions{Inputs: true})
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}
