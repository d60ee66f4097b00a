package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.iioon.dev/iioon/internal/adapters/tui"
)

func initSizedModel(t *testing.T, steps []string) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(nil)
	updated, _ := m.Update(tui.MsgInitSteps{Steps: steps})
	model := updated.(*tui.Model)
	model, _ = updateModel(model, tea.WindowSizeMsg{Width: 100, Height: 30})
	return model
}

func TestView_Initializing(t *testing.T) {
	m := tui.NewModel(nil)
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_ShowsSteps(t *testing.T) {
	m := initSizedModel(t, []string{"resolve", "generate"})

	view := m.View()
	assert.Contains(t, view, "STEPS")
	assert.Contains(t, view, "resolve")
	assert.Contains(t, view, "generate")
	assert.Contains(t, view, "LOGS (Waiting...)")
}

func TestView_StatusIcons(t *testing.T) {
	m := initSizedModel(t, []string{"resolve", "generate", "write"})

	m, _ = updateModel(m, tui.MsgStepStart{Name: "resolve", SpanID: "s1"})
	m, _ = updateModel(m, tui.MsgStepComplete{SpanID: "s1"})

	m, _ = updateModel(m, tui.MsgStepStart{Name: "generate", SpanID: "s2"})

	view := m.View()
	assert.Contains(t, view, "✓ resolve")
	assert.Contains(t, view, "● generate")
	assert.Contains(t, view, "○ write")
}

func TestView_FollowHeader(t *testing.T) {
	m := initSizedModel(t, []string{"resolve"})

	m, _ = updateModel(m, tui.MsgStepStart{Name: "resolve", SpanID: "s1"})

	view := m.View()
	assert.Contains(t, view, "LOGS: resolve (Following)")

	m.FollowMode = false
	view = m.View()
	assert.Contains(t, view, "LOGS: resolve (Manual)")
}
