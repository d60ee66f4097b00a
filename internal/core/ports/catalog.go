package ports

import "go.iioon.dev/iioon/internal/core/domain"

// CatalogLoader defines the interface for loading locale catalogs.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogLoader interface {
	// Load reads every locale file in the folder and returns the catalog.
	// A non-empty fallback must name one of the loaded languages.
	Load(folder, fallback string) (*domain.Catalog, error)
}

// GenerateOptions configures accessor generation.
type GenerateOptions struct {
	// Package is the package name of the generated file.
	Package string
}

// CodeGenerator renders a catalog into a source file of typed accessors.
type CodeGenerator interface {
	Generate(catalog *domain.Catalog, opts GenerateOptions) ([]byte, error)
}
