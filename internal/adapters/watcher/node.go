package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/adapters/fs"
	"go.iioon.dev/iioon/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// FingerprintCacheNodeID is the unique identifier for the fingerprint cache Graft node.
	FingerprintCacheNodeID graft.ID = "adapter.fingerprint_cache"
)

// DefaultDebounceWindow is the coalescing window for file events.
const DefaultDebounceWindow = 200 * time.Millisecond

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	graft.Register(graft.Node[*FingerprintCache]{
		ID:        FingerprintCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*FingerprintCache, error) {
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFingerprintCache(fp), nil
		},
	})
}
