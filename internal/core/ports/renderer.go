package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples step tracking from presentation logic, allowing the same
// event stream to drive either a rich TUI or linear CI logs.
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background
	// goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare
	// for shutdown. It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called when the set of steps to run is known.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a step begins.
	// spanID: unique identifier for this step
	// parentID: spanID of the enclosing step (empty if root)
	OnStepStart(spanID, parentID, name string, startTime time.Time)

	// OnStepLog is called when a step emits output.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a step finishes.
	// err is nil on success.
	OnStepComplete(spanID string, endTime time.Time, err error)
}
