// Package style holds the shared color palette and icons used by every
// surface of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#64748B")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0F172A")
	Mist   = lipgloss.Color("#F1F5F9")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)
