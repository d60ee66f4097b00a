// Package locale loads TOML locale catalogs from disk.
package locale

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const localeExt = ".toml"

// Loader implements ports.CatalogLoader. One TOML file per language; the
// file stem is the language tag.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every locale file in the folder concurrently and builds the
// catalog. Non-TOML entries and subdirectories are ignored.
func (l *Loader) Load(folder, fallback string) (*domain.Catalog, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrLocaleFolderNotFound, "folder", folder)
		}
		return nil, zerr.Wrap(err, domain.ErrLocaleReadFailed.Error())
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), localeExt) {
			continue
		}
		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		return nil, zerr.With(domain.ErrNoLocaleFiles, "folder", folder)
	}

	trees := make(map[string]*domain.MessageTree, len(files))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, name := range files {
		g.Go(func() error {
			tree, err := parseLocaleFile(filepath.Join(folder, name))
			if err != nil {
				return zerr.With(err, "file", name)
			}

			tag := strings.TrimSuffix(name, filepath.Ext(name))

			mu.Lock()
			trees[tag] = tree
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewCatalog(trees, fallback)
}

func parseLocaleFile(path string) (*domain.MessageTree, error) {
	//nolint:gosec // Path is built from the configured locale folder
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLocaleReadFailed.Error())
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLocaleParseFailed.Error())
	}

	return domain.TreeFromMap(raw), nil
}
