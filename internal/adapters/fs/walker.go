// Package fs provides filesystem walking and content fingerprinting.
package fs

import (
	"iter"
	"os"
	"path/filepath"
)

// vcsDirs are always skipped while walking.
var vcsDirs = map[string]struct{}{
	".git": {},
	".jj":  {},
	".hg":  {},
}

// Walker walks directory trees yielding regular files.
type Walker struct{}

// NewWalker creates a Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles walks root depth-first and yields the path of every regular
// file. Version control directories and directories whose base name
// matches one of the ignore patterns are skipped. Walk errors abort the
// iteration silently, callers that need completeness should stat root
// first.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				if shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func shouldSkipDir(name string, ignores []string) bool {
	if _, vcs := vcsDirs[name]; vcs {
		return true
	}
	for _, pattern := range ignores {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
