package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the split step list and log pane.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.stepList(),
		m.logPane(),
	)
}

func (m *Model) stepList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("STEPS") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Steps) {
		end = len(m.Steps)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderStepRow(i, m.Steps[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderStepRow(index int, step *StepNode) string {
	icon := stepIcon(step)
	style := stepStyle(step)

	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if step.Status != StatusDone && step.Status != StatusError {
			style = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, step.Name)
	return cursor + style.Render(content)
}

func stepIcon(step *StepNode) string {
	switch step.Status {
	case StatusRunning:
		return "●"
	case StatusDone:
		return "✓"
	case StatusError:
		return "✗"
	default:
		return "○"
	}
}

func stepStyle(step *StepNode) lipgloss.Style {
	switch step.Status {
	case StatusRunning:
		return stepRunningStyle
	case StatusDone:
		return stepDoneStyle
	case StatusError:
		return stepErrorStyle
	default:
		return stepPendingStyle
	}
}

func (m *Model) logPane() string {
	var header string
	var content string

	if m.ActiveStepName != "" {
		status := " (Manual)"
		if m.FollowMode {
			status = " (Following)"
		}
		header = titleStyle.Render("LOGS: " + m.ActiveStepName + status)

		if node, ok := m.StepMap[m.ActiveStepName]; ok {
			content = node.Term.View()
		}
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}
