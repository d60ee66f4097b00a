// Package detector selects the output mode from the runtime environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how progress is rendered.
type OutputMode int

const (
	// ModeAuto defers the choice to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI renders with the interactive terminal UI.
	ModeTUI
	// ModeLinear renders plain line-oriented output for CI and pipes.
	ModeLinear
)

// DetectEnvironment recommends an output mode: linear when stdout is not
// a terminal or a CI environment is detected, TUI otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag on top of detection.
// Recognized values are "auto", "tui", "linear" and "ci"; anything else
// falls back to the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
