package app_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	adapterlogger "go.iioon.dev/iioon/internal/adapters/logger"
	"go.iioon.dev/iioon/internal/app"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports/mocks"
	"go.iioon.dev/iioon/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

// testDeps exposes the mocked ports behind a test App.
type testDeps struct {
	manifests *mocks.MockManifestLoader
	resolver  *mocks.MockInputResolver
	factory   *mocks.MockShellFactory
	runner    *mocks.MockShellRunner
	catalogs  *mocks.MockCatalogLoader
	generator *mocks.MockCodeGenerator
	store     *mocks.MockGenInfoStore
	connector *mocks.MockDaemonConnector
}

type testStreams struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logs   *bytes.Buffer
}

func newTestApp(t *testing.T, mutate func(deps *app.Deps)) (*app.App, *testDeps, *testStreams) {
	t.Helper()

	ctrl := gomock.NewController(t)
	td := &testDeps{
		manifests: mocks.NewMockManifestLoader(ctrl),
		resolver:  mocks.NewMockInputResolver(ctrl),
		factory:   mocks.NewMockShellFactory(ctrl),
		runner:    mocks.NewMockShellRunner(ctrl),
		catalogs:  mocks.NewMockCatalogLoader(ctrl),
		generator: mocks.NewMockCodeGenerator(ctrl),
		store:     mocks.NewMockGenInfoStore(ctrl),
		connector: mocks.NewMockDaemonConnector(ctrl),
	}

	streams := &testStreams{
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
		logs:   new(bytes.Buffer),
	}

	log := adapterlogger.New()
	log.SetOutput(streams.logs)

	deps := app.Deps{
		Manifests: td.manifests,
		Evaluator: evaluator.New(td.resolver),
		Factory:   td.factory,
		Runner:    td.runner,
		Catalogs:  td.catalogs,
		Generator: td.generator,
		Store:     td.store,
		Resolver:  td.resolver,
		Logger:    log,
	}
	if mutate != nil {
		mutate(&deps)
	}

	a := app.New(deps).WithStreams(new(bytes.Buffer), streams.stdout, streams.stderr)
	return a, td, streams
}

func testManifest(root string) *domain.Manifest {
	return &domain.Manifest{
		Version: "1",
		Root:    root,
		Locales: domain.LocaleConfig{Folder: "locales", Fallback: "en"},
		Inputs: []domain.InputSource{
			{Name: "nixpkgs", Locator: "github:NixOS/nixpkgs/nixos-25.05"},
		},
	}
}

func testShellDef() *domain.ShellDef {
	return &domain.ShellDef{
		Packages: []string{"go", "ripgrep"},
		Env:      map[string]string{"CGO_ENABLED": "0"},
		MOTD:     "welcome",
	}
}

func testCatalog(t *testing.T, trees map[string]map[string]any, fallback string) *domain.Catalog {
	t.Helper()

	byTag := make(map[string]*domain.MessageTree, len(trees))
	for tag, tree := range trees {
		byTag[tag] = domain.TreeFromMap(tree)
	}

	catalog, err := domain.NewCatalog(byTag, fallback)
	require.NoError(t, err)
	return catalog
}

func TestApp_WithStreams(t *testing.T) {
	a := app.New(app.Deps{})
	require.Same(t, a, a.WithStreams(bytes.NewReader(nil), io.Discard, io.Discard))
}
