package daemon

import (
	"context"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
)

// CachedResolver resolves inputs through the daemon's warm cache,
// falling back to local resolution when the daemon call fails.
type CachedResolver struct {
	client   ports.DaemonClient
	fallback ports.InputResolver
}

// NewCachedResolver wraps fallback with the daemon client.
func NewCachedResolver(client ports.DaemonClient, fallback ports.InputResolver) *CachedResolver {
	return &CachedResolver{client: client, fallback: fallback}
}

// Resolve implements ports.InputResolver.
func (r *CachedResolver) Resolve(ctx context.Context, input domain.InputSource) (domain.Pin, error) {
	if pin, err := r.client.ResolvePin(ctx, input); err == nil {
		return pin, nil
	}
	return r.fallback.Resolve(ctx, input)
}
