package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/BreathCodeFlow/tide/internal/auth"
	"github.com/BreathCodeFlow/tide/internal/config"
	"github.com/BreathCodeFlow/tide/internal/events"
)

// ElevatedRunner executes an argument vector under elevation.
// Implemented by auth.Negotiator.
type ElevatedRunner interface {
	RunElevated(ctx context.Context, args []string, label string) (string, error)
}

// LogSink receives execution trace lines. Implemented by logger.Logger.
type LogSink interface {
	LogLine(message string) error
	LogBlock(header, body string) error
}

// Options configures a Runner.
type Options struct {
	DryRun        bool
	Verbose       bool
	Env           []string // effective environment snapshot; nil means os.Environ()
	KeychainLabel string
	Auth          ElevatedRunner
	Bus           *events.Bus
	Log           LogSink // optional
}

// Runner executes a single task: precondition checks, elevation
// delegation, timeout enforcement, and output capture. It reports the
// raw process outcome; required-ness policy belongs to the dispatcher.
type Runner struct {
	opts Options
}

// NewRunner creates a task runner.
func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run executes one task and returns its result. It never panics and
// never blocks longer than the task's timeout plus bounded overhead.
func (r *Runner) Run(ctx context.Context, task config.Task, groupName, groupIcon string) Result {
	start := time.Now()
	groupLabel := formatLabel(groupName, groupIcon)
	taskLabel := formatLabel(task.Name, task.Icon)

	argv := task.Command
	if task.Sudo && len(argv) > 0 && argv[0] != "sudo" {
		argv = append([]string{"sudo"}, argv...)
	}

	display := "<empty command>"
	if len(argv) > 0 {
		display = strings.Join(argv, " ")
	}

	r.publish(events.TopicTask, events.TaskStartedEvent{
		Name:      task.Name,
		Group:     groupName,
		GroupIcon: groupIcon,
		Command:   display,
		Timestamp: time.Now(),
	})
	r.logLine(fmt.Sprintf("▶ [%s] %s :: %s", groupLabel, taskLabel, display))

	finish := func(status Status, output string) Result {
		duration := time.Since(start)
		r.logCompletion(groupLabel, taskLabel, status, duration, output)
		return Result{
			Name:      task.Name,
			Group:     groupName,
			GroupIcon: groupIcon,
			Status:    status,
			Duration:  duration,
			Output:    output,
		}
	}

	if r.opts.DryRun {
		// Simulated latency so dry runs still exercise the scheduler.
		time.Sleep(100 * time.Millisecond)
		return finish(StatusSkipped, "Dry run - command not executed")
	}

	if task.CheckCommand != "" && !auth.CommandExists(task.CheckCommand) {
		return finish(StatusSkipped, fmt.Sprintf("Command '%s' not found", task.CheckCommand))
	}

	if task.CheckPath != "" {
		expanded := config.ExpandTilde(task.CheckPath)
		if _, err := os.Stat(expanded); err != nil {
			return finish(StatusSkipped, fmt.Sprintf("Path '%s' not found", task.CheckPath))
		}
	}

	if len(argv) == 0 {
		return finish(StatusFailed, "empty command")
	}

	// Advisory lint: a task that shells out to sudo internally should
	// declare sudo = true so elevation is negotiated up front.
	if !task.Sudo && r.opts.Verbose && strings.Contains(strings.ToLower(display), "sudo") {
		r.publish(events.TopicTask, events.SudoLintWarningEvent{
			Name:      task.Name,
			Group:     groupName,
			Timestamp: time.Now(),
		})
	}

	timeout := task.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	var output string
	var err error
	if argv[0] == "sudo" && r.opts.Auth != nil {
		output, err = r.opts.Auth.RunElevated(runCtx, argv[1:], r.opts.KeychainLabel)
	} else {
		output, err = r.runCommand(runCtx, argv, task)
	}

	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			r.publish(events.TopicTask, events.InteractiveInputEvent{
				Name:      task.Name,
				Group:     groupName,
				Timestamp: time.Now(),
			})
			r.publish(events.TopicTask, events.TaskTimedOutEvent{
				Name:      task.Name,
				Group:     groupName,
				Seconds:   timeout,
				Timestamp: time.Now(),
			})
			return finish(StatusFailed, timeoutReason(timeout))
		}
		return finish(StatusFailed, err.Error())
	}

	return finish(StatusSuccess, output)
}

// runCommand spawns the process directly with the effective environment
// snapshot, optional working directory, and captured output.
func (r *Runner) runCommand(ctx context.Context, argv []string, task config.Task) (string, error) {
	cmd := newCommand(ctx, argv[0], argv[1:]...)

	if task.WorkingDir != "" {
		cmd.Dir = config.ExpandTilde(task.WorkingDir)
	}

	env := r.opts.Env
	if env == nil {
		env = os.Environ()
	}
	if len(task.Env) > 0 {
		merged := make([]string, len(env), len(env)+len(task.Env))
		copy(merged, env)
		keys := make([]string, 0, len(task.Env))
		for k := range task.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			merged = append(merged, k+"="+task.Env[k])
		}
		env = merged
	}
	cmd.Env = env

	var stdoutBuf, stderrBuf bytes.Buffer
	if r.opts.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			// Timed out or cancelled; the caller maps this.
			return "", ctx.Err()
		}
		var spawnErr *exec.Error
		if errors.As(err, &spawnErr) {
			return "", fmt.Errorf("command execution error: %v", err)
		}
		reason := strings.TrimSpace(stderrBuf.String())
		if reason == "" {
			reason = err.Error()
		}
		return "", fmt.Errorf("command failed: %s", reason)
	}

	return stdoutBuf.String(), nil
}

// logCompletion writes the terminal status line and, when output is
// present, an indented output block.
func (r *Runner) logCompletion(groupLabel, taskLabel string, status Status, duration time.Duration, output string) {
	if r.opts.Log == nil {
		return
	}

	var prefix string
	switch status {
	case StatusSuccess:
		prefix = "✓ SUCCESS"
	case StatusFailed:
		prefix = "✗ FAILED"
	case StatusSkipped:
		prefix = "○ SKIPPED"
	}

	r.logLine(fmt.Sprintf("%s [%s] %s (%s)", prefix, groupLabel, taskLabel, FormatDuration(duration)))

	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return
	}
	header := fmt.Sprintf("└ output [%s] %s", groupLabel, taskLabel)
	if err := r.opts.Log.LogBlock(header, trimmed); err != nil && r.opts.Verbose {
		fmt.Fprintf(os.Stderr, "Failed to write log entry: %v\n", err)
	}
}

func (r *Runner) logLine(message string) {
	if r.opts.Log == nil {
		return
	}
	if err := r.opts.Log.LogLine(message); err != nil && r.opts.Verbose {
		fmt.Fprintf(os.Stderr, "Failed to write log entry: %v\n", err)
	}
}

func (r *Runner) publish(topic string, event events.Event) {
	if r.opts.Bus == nil {
		return
	}
	r.opts.Bus.Publish(topic, event)
}

// timeoutReason distinguishes the "probably waiting for input" failure
// from a generic slow command.
func timeoutReason(seconds int) string {
	return fmt.Sprintf(
		"Command timed out after %d seconds. This may indicate the command is waiting for input (like sudo password). Consider setting 'sudo = true' or 'timeout = <seconds>' in the task config.",
		seconds,
	)
}

// FormatDuration renders a duration as "Ns" under a minute and
// "Nm Ns" above it.
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// formatLabel joins an icon and a name, skipping blank icons.
func formatLabel(name, icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return name
	}
	return icon + " " + name
}
