package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.iioon.dev/iioon/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger injects a buffer and forces NO_COLOR so output carries no
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "simple message", msg: "some message", want: "some message\n"},
		{name: "empty message", msg: "", want: "\n"},
		{name: "multiline message", msg: "line1\nline2", want: "line1\nline2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")
	assert.Equal(t, "! some warning\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "simple error",
			err:  os.ErrPermission,
			want: "✗ Error: permission denied\n",
		},
		{
			name: "multiline error",
			err:  errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			want: "✗ Error: yaml: unmarshal errors:\n         line 30: cannot unmarshal\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(
		zerr.Wrap(
			errors.New("connection refused"),
			"failed to query revision",
		),
		"failed to pin input",
	))

	want := "✗ Error: failed to pin input\n" +
		"\n" +
		"  Caused by:\n" +
		"    → failed to query revision\n" +
		"    → connection refused\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains are not unwrapped link by link, the full message
	// appears as one entry.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to reach api: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)
	assert.Equal(t, "✗ Error: failed to reach api: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)

	buf.Reset()
	lg.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogger_SetJSON_PreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("still here")
	assert.Equal(t, "still here\n", buf.String())
}
