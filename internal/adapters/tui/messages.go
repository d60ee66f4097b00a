package tui

import "time"

// MsgInitSteps resets the step list to the planned steps.
type MsgInitSteps struct {
	Steps []string
}

// MsgStepStart marks a step as running.
type MsgStepStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries a chunk of output for a running step.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete marks a step as finished.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
