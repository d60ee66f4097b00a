package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestCheck_Consistent(t *testing.T) {
	a, td, streams := newTestApp(t, nil)

	root := t.TempDir()
	catalog := testCatalog(t, map[string]map[string]any{
		"en": {"hello": "Hello {name}"},
		"de": {"hello": "Hallo {name}"},
	}, "en")

	td.manifests.EXPECT().Load(".").Return(testManifest(root), testShellDef(), nil)
	td.catalogs.EXPECT().Load(gomock.Any(), "en").Return(catalog, nil)

	require.NoError(t, a.Check(t.Context()))
	require.Empty(t, streams.stdout.String())
	require.Contains(t, streams.logs.String(), "catalog is consistent")
}

func TestCheck_WarningsOnly(t *testing.T) {
	a, td, streams := newTestApp(t, nil)

	catalog := testCatalog(t, map[string]map[string]any{
		"en": {"hello": "Hello", "bye": "Bye"},
		"de": {"hello": "Hallo"},
	}, "en")

	td.manifests.EXPECT().Load(".").Return(testManifest(t.TempDir()), testShellDef(), nil)
	td.catalogs.EXPECT().Load(gomock.Any(), "en").Return(catalog, nil)

	require.NoError(t, a.Check(t.Context()))
	require.Contains(t, streams.stdout.String(), "warning: [de] bye: missing key, runtime will fall back")
}

func TestCheck_PlaceholderMismatchFails(t *testing.T) {
	a, td, streams := newTestApp(t, nil)

	catalog := testCatalog(t, map[string]map[string]any{
		"en": {"hello": "Hello {name}"},
		"de": {"hello": "Hallo {nom}"},
	}, "en")

	td.manifests.EXPECT().Load(".").Return(testManifest(t.TempDir()), testShellDef(), nil)
	td.catalogs.EXPECT().Load(gomock.Any(), "en").Return(catalog, nil)

	err := a.Check(t.Context())
	require.ErrorIs(t, err, domain.ErrCatalogInconsistent)
	require.Contains(t, streams.stdout.String(), "error: [de] hello: placeholders differ from the reference language")
}

func TestLangs(t *testing.T) {
	a, td, streams := newTestApp(t, nil)

	catalog := testCatalog(t, map[string]map[string]any{
		"en": {"hello": "Hello", "bye": "Bye"},
		"de": {"hello": "Hallo"},
	}, "en")

	td.manifests.EXPECT().Load(".").Return(testManifest(t.TempDir()), testShellDef(), nil)
	td.catalogs.EXPECT().Load(gomock.Any(), "en").Return(catalog, nil)

	require.NoError(t, a.Langs(t.Context()))

	out := streams.stdout.String()
	require.Contains(t, out, "en\t2 messages (fallback)\n")
	require.Contains(t, out, "de\t1 messages\n")
}

func TestLangs_LoadError(t *testing.T) {
	a, td, _ := newTestApp(t, nil)

	td.manifests.EXPECT().Load(".").Return(nil, nil, domain.ErrManifestNotFound)

	err := a.Langs(t.Context())
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}
