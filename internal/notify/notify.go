// Package notify delivers fire-and-forget desktop alerts via osascript.
// Every call is best-effort: delivery failures are returned for the
// caller to ignore or log, and never affect task outcomes.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// Notifier sends macOS desktop notifications for run events.
// A disabled Notifier turns every call into a no-op.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
}

// New creates a notifier. When enabled is false all notifications are
// silently dropped.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, send: send}
}

// InteractiveInputDetected alerts that a task appears to be blocked
// waiting for input it cannot receive.
func (n *Notifier) InteractiveInputDetected(taskName, groupName string) error {
	if !n.enabled {
		return nil
	}
	return n.send(
		"🌊 Tide - Interaction Required",
		fmt.Sprintf("Task '%s' (group: %s) appears to be waiting for interactive input.\nCheck your terminal or consider setting 'sudo = true' in config.", taskName, groupName),
	)
}

// TaskTimedOut alerts that a task exceeded its timeout.
func (n *Notifier) TaskTimedOut(taskName, groupName string, seconds int) error {
	if !n.enabled {
		return nil
	}
	return n.send(
		"⚠️ Tide - Task Timeout",
		fmt.Sprintf("Task '%s' (group: %s) timed out after %d seconds.\nIt may be waiting for input or stuck.", taskName, groupName, seconds),
	)
}

// TaskFailed alerts that a required task failed.
func (n *Notifier) TaskFailed(taskName, groupName, reason string) error {
	if !n.enabled {
		return nil
	}
	if len(reason) > 100 {
		reason = reason[:100] + "..."
	}
	return n.send(
		"❌ Tide - Task Failed",
		fmt.Sprintf("Task '%s' (group: %s) failed:\n%s", taskName, groupName, reason),
	)
}

// ElevationRequired alerts that a password prompt is pending in the
// terminal.
func (n *Notifier) ElevationRequired() error {
	if !n.enabled {
		return nil
	}
	return n.send(
		"🔐 Tide - Sudo Password Required",
		"Some tasks require sudo privileges.\nPlease check your terminal to enter your password.",
	)
}

// AllTasksComplete alerts that every task finished without failures.
func (n *Notifier) AllTasksComplete(successCount, totalSeconds int) error {
	if !n.enabled {
		return nil
	}
	return n.send(
		"✅ Tide - All Tasks Complete",
		fmt.Sprintf("%d tasks completed successfully in %d seconds.", successCount, totalSeconds),
	)
}

// send delivers a notification via osascript with the default sound.
func send(title, message string) error {
	title = escapeAppleScript(title)
	message = escapeAppleScript(message)

	script := fmt.Sprintf(
		`display notification %q with title %q sound name "default"`,
		message, title,
	)

	cmd := exec.Command("osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
