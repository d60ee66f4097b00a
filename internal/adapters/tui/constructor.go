// Package tui provides the interactive progress view.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.iioon.dev/iioon/internal/ui/output"
)

// NewModel creates a TUI model rendering to w. A nil writer defaults to
// stderr.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Steps:      make([]*StepNode, 0),
		StepMap:    make(map[string]*StepNode),
		SpanMap:    make(map[string]*StepNode),
		AutoScroll: true,
		FollowMode: true,
	}
}
