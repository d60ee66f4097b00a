package telemetry

import (
	"context"
	"sync"

	"go.iioon.dev/iioon/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// NewTracerProvider builds a tracer provider over the given span
// processors and installs it as the global provider.
func NewTracerProvider(processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

// OTelTracer implements ports.Tracer on OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider

	mu       sync.RWMutex
	renderer ports.Renderer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
// The global tracer provider binds lazily, so the provider may be
// installed after construction.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// WithRenderer routes per-span log output and plan announcements to r.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
	return t
}

// WithProvider attaches the provider so Shutdown can flush it.
func (t *OTelTracer) WithProvider(tp *sdktrace.TracerProvider) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.provider = tp
	return t
}

// Start opens a span. When a renderer is attached, log writes on the
// span are batched and forwarded to it.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)

	t.mu.RLock()
	renderer := t.renderer
	t.mu.RUnlock()

	var batcher *BatchProcessor
	if renderer != nil {
		spanID := span.SpanContext().SpanID().String()
		batcher = NewBatchProcessor(0, 0, func(data []byte) {
			renderer.OnStepLog(spanID, data)
		})
	}

	return ctx, &OTelSpan{span: span, batcher: batcher}
}

// EmitPlan announces the steps about to run, both as a span event and to
// the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, steps []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("steps", steps),
		))
	}

	t.mu.RLock()
	renderer := t.renderer
	t.mu.RUnlock()

	if renderer != nil {
		renderer.OnPlanEmit(steps)
	}
}

// Shutdown flushes and stops the attached provider, if any.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	t.mu.RLock()
	tp := t.provider
	t.mu.RUnlock()

	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

// OTelSpan implements ports.Span over an OpenTelemetry span.
type OTelSpan struct {
	span    trace.Span
	batcher *BatchProcessor
}

// Log forwards output to the renderer batcher when present, or records
// it as a span event.
func (s *OTelSpan) Log(data []byte) {
	if s.batcher != nil {
		_, _ = s.batcher.Write(data)
		return
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(data))))
}

// End completes the span, recording err when non-nil.
func (s *OTelSpan) End(err error) {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// Batcher exposes the log batcher for tests.
func (s *OTelSpan) Batcher() *BatchProcessor {
	return s.batcher
}
