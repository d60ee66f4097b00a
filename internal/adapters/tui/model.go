package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	stepListWidthRatio = 0.3
	logPaneBorderWidth = 4
)

// StepStatus represents the current state of a step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to start.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step completed successfully.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode is one entry in the step list.
type StepNode struct {
	Name   string
	Status StepStatus
	Term   *Vterm
}

// Model is the Bubble Tea model for the progress view.
type Model struct {
	Steps          []*StepNode
	StepMap        map[string]*StepNode
	SpanMap        map[string]*StepNode
	AutoScroll     bool
	ActiveStepName string
	SelectedIdx    int
	ListOffset     int
	ListHeight     int
	LogWidth       int
	LogHeight      int
	FollowMode     bool
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selectedStep() *StepNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Steps) {
		return m.Steps[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if node := m.selectedStep(); node != nil {
		m.ActiveStepName = node.Name

		if m.FollowMode && m.AutoScroll {
			maxOff := node.Term.UsedHeight() - node.Term.Height
			if maxOff < 0 {
				maxOff = 0
			}
			node.Term.Offset = maxOff
		}
	}
}

// addStep registers a step node, creating its terminal with the current
// pane dimensions.
func (m *Model) addStep(name string) *StepNode {
	term := NewVterm()
	if m.LogWidth > 0 && m.LogHeight > 0 {
		term.SetWidth(m.LogWidth)
		term.SetHeight(m.LogHeight)
	}

	node := &StepNode{
		Name:   name,
		Status: StatusPending,
		Term:   term,
	}
	m.Steps = append(m.Steps, node)
	m.StepMap[name] = node
	return node
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Steps)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "esc":
			m.FollowMode = true
			for i, s := range m.Steps {
				if s.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			// Remaining keys scroll the active step's terminal.
			if m.ActiveStepName != "" {
				if node, ok := m.StepMap[m.ActiveStepName]; ok {
					node.Term.Update(msg)
				}
			}
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * stepListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth

		headerHeight := lipgloss.Height(titleStyle.Render("TEST"))
		logHeight := msg.Height - headerHeight

		m.LogWidth = logWidth
		m.LogHeight = logHeight

		fullHeader := titleStyle.Render("STEPS") + "\n\n"
		m.ListHeight = msg.Height - lipgloss.Height(fullHeader)
		m.ensureVisible()

		for _, node := range m.Steps {
			node.Term.SetWidth(logWidth)
			node.Term.SetHeight(logHeight)
		}

	case MsgInitSteps:
		m.Steps = make([]*StepNode, 0, len(msg.Steps))
		m.StepMap = make(map[string]*StepNode, len(msg.Steps))
		m.SpanMap = make(map[string]*StepNode)
		for _, name := range msg.Steps {
			m.addStep(name)
		}

	case MsgStepStart:
		node, ok := m.StepMap[msg.Name]
		if !ok {
			// Spans outside the announced plan still show up.
			node = m.addStep(msg.Name)
		}
		node.Status = StatusRunning
		m.SpanMap[msg.SpanID] = node

		if m.FollowMode {
			m.ActiveStepName = msg.Name
			for i, s := range m.Steps {
				if s.Name == msg.Name {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()
		}

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case MsgStepComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
		}
	}

	return m, cmd
}
