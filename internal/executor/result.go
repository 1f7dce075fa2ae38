package executor

import (
	"time"
)

// Status is the terminal state of a task, assigned exactly once.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailed
	StatusSkipped
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of one task execution. Immutable after
// creation; Output carries captured stdout on success and a
// human-readable reason on skip or failure.
type Result struct {
	Name      string
	Group     string
	GroupIcon string
	Status    Status
	Duration  time.Duration
	Output    string
}
