package ports

import (
	"context"

	"go.iioon.dev/iioon/internal/core/domain"
)

// InputResolver pins declared input sources to immutable revisions.
//
// Resolution is idempotent: resolving the same locator against an
// unchanged cache yields the same pin. Failures from the upstream source
// propagate wrapped, never classified.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	Resolve(ctx context.Context, input domain.InputSource) (domain.Pin, error)
}
