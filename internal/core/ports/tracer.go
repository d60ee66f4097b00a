package ports

import "context"

// Span represents one traced step.
type Span interface {
	// Log emits output attributed to this span.
	Log(data []byte)

	// End completes the span. A non-nil error marks it failed.
	End(err error)
}

// Tracer creates spans for the steps of an operation.
type Tracer interface {
	// Start creates a new span. The returned context carries it so that
	// nested spans pick up the parent relationship.
	Start(ctx context.Context, name string) (context.Context, Span)

	// EmitPlan signals the set of planned step names.
	EmitPlan(ctx context.Context, steps []string)

	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}
