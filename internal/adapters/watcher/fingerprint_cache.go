package watcher

import (
	"sync"
	"unique"

	"go.iioon.dev/iioon/internal/core/ports"
)

// FingerprintCache remembers the last observed content fingerprint per
// folder so watch-driven consumers can skip work when a burst of events
// left the content unchanged, editor backup-and-rename saves being the
// usual case.
type FingerprintCache struct {
	mu            sync.Mutex
	fingerprinter ports.Fingerprinter
	folders       map[unique.Handle[string]]string
}

// NewFingerprintCache creates a cache computing fingerprints with fp.
func NewFingerprintCache(fp ports.Fingerprinter) *FingerprintCache {
	return &FingerprintCache{
		fingerprinter: fp,
		folders:       make(map[unique.Handle[string]]string),
	}
}

// Changed recomputes the fingerprint of folder and reports whether it
// differs from the last observation. The first observation of a folder
// always counts as changed.
func (c *FingerprintCache) Changed(folder string) (bool, error) {
	fingerprint, err := c.fingerprinter.FingerprintDir(folder)
	if err != nil {
		return false, err
	}

	handle := unique.Make(folder)

	c.mu.Lock()
	defer c.mu.Unlock()

	last, seen := c.folders[handle]
	c.folders[handle] = fingerprint
	return !seen || last != fingerprint, nil
}

// Forget drops the recorded fingerprint for folder so the next Changed
// call reports a change.
func (c *FingerprintCache) Forget(folder string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.folders, unique.Make(folder))
}
