// Package linear provides a synchronous, line-buffered renderer for CI
// environments and pipes.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with chronological, prefixed lines.
// Progress goes to stderr, step output to stdout.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	steps   map[string]*stepState
	buffers map[string]*bytes.Buffer
}

type stepState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a linear renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	output := termenv.NewOutput(stderr, termenv.WithProfile(colorProfile()))

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output,
		steps:   make(map[string]*stepState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Start is a no-op, the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes every remaining buffer.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op, the renderer writes synchronously.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the planned steps.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning %d step(s): %s\n",
		len(steps), strings.Join(steps, ", "))
}

// OnStepStart prints a start line and opens the step's line buffer.
func (r *Renderer) OnStepStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStepLog buffers output and prints complete lines with the step prefix.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Keep the incomplete tail for the next chunk.
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}
		r.printLineLocked(step.name, line)
	}
}

// OnStepComplete flushes the buffer and prints the completion status.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(step.startTime)
	prefix := fmt.Sprintf("[%s]", step.name)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			prefix, symbol, duration, err)
	} else {
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
			prefix, symbol, duration)
	}

	delete(r.steps, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked prints any buffered partial line for a step.
func (r *Renderer) flushBufferLocked(spanID string) {
	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(step.name, buf.Bytes())
		buf.Reset()
	}
}

func (r *Renderer) printLineLocked(stepName string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	prefix := fmt.Sprintf("[%s]", stepName)
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", prefix, string(line))
}
