package ports

import "go.iioon.dev/iioon/internal/core/domain"

// GenInfoStore persists generation records between CLI invocations.
//
//go:generate mockgen -source=gen_info_store.go -destination=mocks/mock_gen_info_store.go -package=mocks
type GenInfoStore interface {
	// Get returns the stored record for a locale folder, or nil when no
	// generation has been recorded.
	Get(root, folder string) (*domain.GenInfo, error)

	// Put stores the record for its folder, replacing any previous one.
	Put(root string, info domain.GenInfo) error
}
