package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/adapters/logger"
)

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		wantEnabled  bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, wantEnabled: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, wantEnabled: true},
		{name: "warn above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelWarn, wantEnabled: true},
		{name: "error above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelError, wantEnabled: true},
		{name: "debug at debug", handlerLevel: slog.LevelDebug, recordLevel: slog.LevelDebug, wantEnabled: true},
		{name: "warn at error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: tt.handlerLevel,
			})

			assert.Equal(t, tt.wantEnabled, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_RecordAttrs(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		attrs []any
		want  string
	}{
		{name: "string attribute", msg: "string attr", attrs: []any{"key", "value"}, want: "string attr key=value\n"},
		{name: "int attribute", msg: "int attr", attrs: []any{"count", 42}, want: "int attr count=42\n"},
		{name: "bool attribute", msg: "bool attr", attrs: []any{"enabled", true}, want: "bool attr enabled=true\n"},
		{name: "multiple attributes", msg: "multi", attrs: []any{"a", "1", "b", "2"}, want: "multi a=1 b=2\n"},
		{name: "no attributes", msg: "plain", attrs: []any{}, want: "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})

			slog.New(handler).Info(tt.msg, tt.attrs...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Combination(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h slog.Handler) slog.Handler
		msg   string
		attrs []any
		want  string
	}{
		{
			name: "handler attrs with record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("hkey", "hval")})
			},
			msg:   "combined",
			attrs: []any{"rkey", "rval"},
			want:  "combined hkey=hval rkey=rval\n",
		},
		{
			name: "group prefixes keys",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("req").WithAttrs([]slog.Attr{slog.String("id", "123")})
			},
			msg:   "grouped",
			attrs: []any{"extra", "data"},
			want:  "grouped req.id=123 req.extra=data\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			baseHandler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})

			slog.New(tt.setup(baseHandler)).Info(tt.msg, tt.attrs...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	})
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	handler := logger.NewPrettyHandler(&brokenWriter{}, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	require.NotPanics(t, func() {
		slog.New(handler).Info("this will fail to write")
	})
}

// brokenWriter always fails.
type brokenWriter struct{}

func (bw *brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
