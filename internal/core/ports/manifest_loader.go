// Package ports defines the core interfaces for the application.
package ports

import "go.iioon.dev/iioon/internal/core/domain"

// ManifestLoader defines the interface for loading the project manifest
// and its companion shell definition.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load walks up from cwd to the manifest, parses it together with the
	// shell definition file it names, and returns validated domain types.
	Load(cwd string) (*domain.Manifest, *domain.ShellDef, error)

	// DiscoverRoot walks up from cwd to find the directory containing
	// iioon.yaml.
	DiscoverRoot(cwd string) (string, error)
}
