package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.iioon.dev/iioon/internal/core/domain"
)

// Check validates catalog consistency against the fallback language and
// prints every finding. It fails when error-severity findings exist.
func (a *App) Check(_ context.Context) error {
	catalog, err := a.loadCatalog()
	if err != nil {
		return err
	}

	diags := domain.CheckCatalog(catalog)
	for _, d := range diags {
		fmt.Fprintf(a.stdout, "%s: [%s] %s: %s\n", d.Severity, d.Language, d.Key, d.Detail)
	}

	if domain.HasErrors(diags) {
		return domain.ErrCatalogInconsistent
	}

	if len(diags) == 0 {
		a.deps.Logger.Info("catalog is consistent")
	}
	return nil
}

// Langs lists the catalog's languages with their message counts.
func (a *App) Langs(_ context.Context) error {
	catalog, err := a.loadCatalog()
	if err != nil {
		return err
	}

	fallback := catalog.FallbackTag()
	for _, tag := range catalog.Languages() {
		lang, _ := catalog.Language(tag)

		marker := ""
		if tag == fallback {
			marker = " (fallback)"
		}
		fmt.Fprintf(a.stdout, "%s\t%d messages%s\n", tag, lang.Len(), marker)
	}
	return nil
}

func (a *App) loadCatalog() (*domain.Catalog, error) {
	manifest, _, err := a.deps.Manifests.Load(".")
	if err != nil {
		return nil, err
	}

	folder := filepath.Join(manifest.Root, manifest.Locales.Folder)
	return a.deps.Catalogs.Load(folder, manifest.Locales.Fallback)
}
