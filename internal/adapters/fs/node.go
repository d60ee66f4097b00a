package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.iioon.dev/iioon/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprinter Graft node.
const NodeID graft.ID = "adapter.fingerprinter"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(NewWalker()), nil
		},
	})
}
