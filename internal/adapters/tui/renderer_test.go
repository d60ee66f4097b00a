package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.iioon.dev/iioon/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func newTestRenderer() *tui.Renderer {
	model := tui.NewModel(io.Discard)
	return tui.NewRenderer(
		&model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer := newTestRenderer()

	if err := renderer.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := renderer.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := renderer.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestRenderer_EventForwarding(t *testing.T) {
	renderer := newTestRenderer()

	if err := renderer.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() {
		_ = renderer.Stop()
		_ = renderer.Wait()
	}()

	startTime := time.Now()
	renderer.OnPlanEmit([]string{"resolve", "generate"})
	renderer.OnStepStart("span1", "", "resolve", startTime)
	renderer.OnStepLog("span1", []byte("test log line\n"))
	renderer.OnStepComplete("span1", startTime.Add(100*time.Millisecond), nil)
	renderer.OnStepComplete("span1", startTime.Add(time.Second), zerr.New("step failed"))

	time.Sleep(10 * time.Millisecond)
}

func TestRenderer_Program(t *testing.T) {
	renderer := newTestRenderer()
	if renderer.Program() == nil {
		t.Error("Expected non-nil Program()")
	}
}
