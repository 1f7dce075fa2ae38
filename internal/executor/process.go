package executor

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// newCommand creates an exec.Cmd with process group isolation.
// Setpgid puts the subprocess in its own process group so a timeout can
// terminate the entire subprocess tree, and a nil Stdin binds the
// process to the null device: a command that unexpectedly prompts for
// input reads EOF instead of hanging forever.
func newCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}
	cmd.WaitDelay = 5 * time.Second
	cmd.Stdin = nil
	return cmd
}

// killProcessGroup kills the entire process group associated with the
// command, so children spawned by the task don't outlive it.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return fmt.Errorf("process not started")
	}

	// Negative PID targets the whole group.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		return fmt.Errorf("failed to kill process group: %w", err)
	}

	return nil
}
