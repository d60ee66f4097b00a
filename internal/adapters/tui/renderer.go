package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer exposes the Bubble Tea program as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer wraps model in a program with the given options.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the planned steps to the TUI.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.program.Send(MsgInitSteps{Steps: steps})
}

// OnStepStart forwards a step start event to the TUI.
func (r *Renderer) OnStepStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgStepStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnStepLog forwards step output to the TUI.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.program.Send(MsgStepLog{
		SpanID: spanID,
		Data:   data,
	})
}

// OnStepComplete forwards a step completion event to the TUI.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgStepComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for tests.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
