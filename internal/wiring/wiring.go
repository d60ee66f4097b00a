// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.iioon.dev/iioon/internal/adapters/cas"
	_ "go.iioon.dev/iioon/internal/adapters/codegen"
	_ "go.iioon.dev/iioon/internal/adapters/config"
	_ "go.iioon.dev/iioon/internal/adapters/daemon"
	_ "go.iioon.dev/iioon/internal/adapters/fs"
	_ "go.iioon.dev/iioon/internal/adapters/locale"
	_ "go.iioon.dev/iioon/internal/adapters/logger"
	_ "go.iioon.dev/iioon/internal/adapters/nix"
	_ "go.iioon.dev/iioon/internal/adapters/shell"
	_ "go.iioon.dev/iioon/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.iioon.dev/iioon/internal/app"
	_ "go.iioon.dev/iioon/internal/engine/evaluator"
)
