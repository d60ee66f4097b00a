// Package daemon keeps resolver results warm between CLI invocations.
// It exposes a JSON-RPC server and client over a Unix domain socket.
package daemon

import (
	"sync"

	"go.iioon.dev/iioon/internal/core/domain"
)

// PinCache holds resolved input pins in memory. The daemon outlives
// individual CLI invocations, so repeated resolutions of the same
// locator skip the network entirely until the daemon idles out.
type PinCache struct {
	mu   sync.RWMutex
	pins map[string]domain.Pin
}

// NewPinCache creates an empty PinCache.
func NewPinCache() *PinCache {
	return &PinCache{pins: make(map[string]domain.Pin)}
}

// Get returns the cached pin for a locator.
func (c *PinCache) Get(locator string) (domain.Pin, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pin, ok := c.pins[locator]
	return pin, ok
}

// Set stores a pin under its locator.
func (c *PinCache) Set(locator string, pin domain.Pin) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pins[locator] = pin
}

// Len returns the number of cached pins.
func (c *PinCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pins)
}
