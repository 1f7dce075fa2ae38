package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// elevator abstracts the privilege-escalation mechanism so the
// negotiation flow can be tested without a real sudo binary.
type elevator interface {
	// CheckCached reports whether elevation would currently succeed
	// without prompting (a valid cached session).
	CheckCached(ctx context.Context) bool
	// Authenticate validates a secret by performing a silent no-op
	// elevation, refreshing the cached session on success.
	Authenticate(ctx context.Context, secret string) (bool, error)
	// Execute runs args under elevation and returns stdout/stderr.
	Execute(ctx context.Context, args []string) (stdout, stderr []byte, err error)
}

// sudoElevator drives the system sudo binary. Every invocation keeps
// stdin detached from the terminal: the probe uses -n, authentication
// feeds the secret through a pipe via -S, and execution relies on the
// refreshed timestamp.
type sudoElevator struct{}

func (sudoElevator) CheckCached(ctx context.Context) bool {
	cmd := newCommand(ctx, "sudo", "-n", "true")
	return cmd.Run() == nil
}

func (sudoElevator) Authenticate(ctx context.Context, secret string) (bool, error) {
	cmd := newCommand(ctx, "sudo", "-S", "true")
	cmd.Stdin = strings.NewReader(secret + "\n")
	if err := cmd.Run(); err != nil {
		if _, isExit := exitCode(err); isExit {
			return false, nil
		}
		return false, fmt.Errorf("running sudo: %w", err)
	}
	return true, nil
}

func (sudoElevator) Execute(ctx context.Context, args []string) ([]byte, []byte, error) {
	cmd := newCommand(ctx, "sudo", args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), err
}

// newCommand creates a context-bound command with stdin detached.
func newCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = nil // null device, never the terminal
	return cmd
}

// exitCode extracts the exit code from a command error, if it carries one.
func exitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
