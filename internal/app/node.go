package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/adapters/cas"
	"go.iioon.dev/iioon/internal/adapters/codegen"
	"go.iioon.dev/iioon/internal/adapters/config"
	adapterdaemon "go.iioon.dev/iioon/internal/adapters/daemon"
	"go.iioon.dev/iioon/internal/adapters/fs"
	"go.iioon.dev/iioon/internal/adapters/locale"
	"go.iioon.dev/iioon/internal/adapters/logger"
	"go.iioon.dev/iioon/internal/adapters/nix"
	"go.iioon.dev/iioon/internal/adapters/shell"
	filewatcher "go.iioon.dev/iioon/internal/adapters/watcher"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.iioon.dev/iioon/internal/engine/evaluator"
)

// Components is the root object the dependency graph assembles for the
// CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			evaluator.NodeID,
			nix.ShellEnvNodeID,
			nix.ResolverNodeID,
			shell.NodeID,
			locale.NodeID,
			codegen.NodeID,
			cas.NodeID,
			fs.NodeID,
			filewatcher.WatcherNodeID,
			filewatcher.FingerprintCacheNodeID,
			adapterdaemon.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			deps := Deps{}

			var err error
			if deps.Manifests, err = graft.Dep[ports.ManifestLoader](ctx); err != nil {
				return nil, err
			}
			if deps.Evaluator, err = graft.Dep[*evaluator.Evaluator](ctx); err != nil {
				return nil, err
			}
			if deps.Factory, err = graft.Dep[ports.ShellFactory](ctx); err != nil {
				return nil, err
			}
			if deps.Resolver, err = graft.Dep[ports.InputResolver](ctx); err != nil {
				return nil, err
			}
			if deps.Runner, err = graft.Dep[ports.ShellRunner](ctx); err != nil {
				return nil, err
			}
			if deps.Catalogs, err = graft.Dep[ports.CatalogLoader](ctx); err != nil {
				return nil, err
			}
			if deps.Generator, err = graft.Dep[ports.CodeGenerator](ctx); err != nil {
				return nil, err
			}
			if deps.Store, err = graft.Dep[ports.GenInfoStore](ctx); err != nil {
				return nil, err
			}
			if deps.Fingerprinter, err = graft.Dep[ports.Fingerprinter](ctx); err != nil {
				return nil, err
			}
			if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
				return nil, err
			}
			if deps.Fingerprints, err = graft.Dep[*filewatcher.FingerprintCache](ctx); err != nil {
				return nil, err
			}
			if deps.Connector, err = graft.Dep[ports.DaemonConnector](ctx); err != nil {
				return nil, err
			}
			if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
				return nil, err
			}

			return &Components{
				App:    New(deps),
				Logger: deps.Logger,
			}, nil
		},
	})
}
