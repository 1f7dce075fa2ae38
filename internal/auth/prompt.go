package auth

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts an interactive prompt.
var ErrCancelled = errors.New("prompt cancelled")

// PromptSource supplies interactive answers. The engine depends only on
// this capability so headless runs and tests can substitute doubles.
type PromptSource interface {
	// Password asks for a secret; returns ErrCancelled on abort.
	Password(title string) (string, error)
	// Confirm asks a yes/no question with a default answer.
	Confirm(title string, def bool) (bool, error)
}

// TerminalPrompt renders prompts on the controlling terminal.
type TerminalPrompt struct{}

// Password asks for a masked secret on the terminal.
func (TerminalPrompt) Password(title string) (string, error) {
	var secret string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&secret),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return secret, nil
}

// Confirm asks a yes/no question on the terminal.
func (TerminalPrompt) Confirm(title string, def bool) (bool, error) {
	answer := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return answer, nil
}
