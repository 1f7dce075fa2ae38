package events

import (
	"time"
)

// Event is the base interface for all events.
type Event interface {
	EventType() string
	TaskName() string
}

// Topic constants
const (
	TopicTask = "task"
	TopicAuth = "auth"
	TopicRun  = "run"
)

// Event type constants
const (
	EventTypeTaskStarted       = "task.started"
	EventTypeTaskFinished      = "task.finished"
	EventTypeTaskFailed        = "task.failed"
	EventTypeTaskTimedOut      = "task.timed_out"
	EventTypeInteractiveInput  = "task.interactive_input"
	EventTypeSudoLintWarning   = "task.sudo_lint"
	EventTypeElevationRequired = "auth.elevation_required"
	EventTypeRunCompleted      = "run.completed"
)

// TaskStartedEvent is published when a task begins execution.
type TaskStartedEvent struct {
	Name      string
	Group     string
	GroupIcon string
	Command   string
	Timestamp time.Time
}

func (e TaskStartedEvent) EventType() string { return EventTypeTaskStarted }
func (e TaskStartedEvent) TaskName() string  { return e.Name }

// TaskFinishedEvent is published when a task reaches a terminal status.
type TaskFinishedEvent struct {
	Name      string
	Group     string
	GroupIcon string
	Status    string
	Reason    string
	Duration  time.Duration
	Timestamp time.Time
}

func (e TaskFinishedEvent) EventType() string { return EventTypeTaskFinished }
func (e TaskFinishedEvent) TaskName() string  { return e.Name }

// TaskFailedEvent is published when a required task fails.
type TaskFailedEvent struct {
	Name      string
	Group     string
	Reason    string
	Timestamp time.Time
}

func (e TaskFailedEvent) EventType() string { return EventTypeTaskFailed }
func (e TaskFailedEvent) TaskName() string  { return e.Name }

// TaskTimedOutEvent is published when a task exceeds its timeout.
type TaskTimedOutEvent struct {
	Name      string
	Group     string
	Seconds   int
	Timestamp time.Time
}

func (e TaskTimedOutEvent) EventType() string { return EventTypeTaskTimedOut }
func (e TaskTimedOutEvent) TaskName() string  { return e.Name }

// InteractiveInputEvent is published when a timed-out task appears to be
// blocked waiting for input it can never receive.
type InteractiveInputEvent struct {
	Name      string
	Group     string
	Timestamp time.Time
}

func (e InteractiveInputEvent) EventType() string { return EventTypeInteractiveInput }
func (e InteractiveInputEvent) TaskName() string  { return e.Name }

// SudoLintWarningEvent is an advisory published when a task not marked
// for elevation carries "sudo" somewhere in its argument vector.
type SudoLintWarningEvent struct {
	Name      string
	Group     string
	Timestamp time.Time
}

func (e SudoLintWarningEvent) EventType() string { return EventTypeSudoLintWarning }
func (e SudoLintWarningEvent) TaskName() string  { return e.Name }

// ElevationRequiredEvent is published when an interactive password
// prompt is about to block the terminal.
type ElevationRequiredEvent struct {
	Timestamp time.Time
}

func (e ElevationRequiredEvent) EventType() string { return EventTypeElevationRequired }
func (e ElevationRequiredEvent) TaskName() string  { return "" }

// RunCompletedEvent is published after the whole run finishes.
type RunCompletedEvent struct {
	SuccessCount int
	TotalSeconds int
	Timestamp    time.Time
}

func (e RunCompletedEvent) EventType() string { return EventTypeRunCompleted }
func (e RunCompletedEvent) TaskName() string  { return "" }
