package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	".iioon":       true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      unique.Handle[string]
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: watcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching root recursively. Directories created after the
// walk are picked up from their create events. A watcher watches one
// root for its lifetime; calling Start again is an error.
func (w *Watcher) Start(ctx context.Context, root string) error {
	var unset unique.Handle[string]
	if w.root != unset {
		return zerr.With(domain.ErrWatcherAlreadyStarted, "root", w.root.Value())
	}
	w.root = unique.Make(root)

	for dir := range w.walkDirs(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over file system events. The iteration
// ends when the watcher stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// walkDirs yields every watchable directory under root. Directories
// that cannot be read are skipped instead of aborting the walk.
func (w *Watcher) walkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			if d.IsDir() {
				if shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

			// New directories must be added to the watch set, including
			// anything already created inside them before we got here.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !shouldSkipDirectories[info.Name()] {
					for dir := range w.walkDirs(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}
	case event.Op.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}
	case event.Op.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}
	case event.Op.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}
	default:
		return nil
	}
}
