// Package output constructs termenv.Output values with a consistent color
// profile and TTY policy for the whole CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile for interactive terminals. NO_COLOR
// always wins and downgrades to Ascii; otherwise the terminal's own
// capabilities decide.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the profile for CI and other non-interactive
// writers. NO_COLOR downgrades to Ascii; otherwise plain ANSI, which every
// CI log viewer understands.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New wraps w in a termenv.Output using the interactive profile.
// A nil writer falls back to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile wraps w in a termenv.Output with a caller-chosen profile
// selector. A nil writer falls back to stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
