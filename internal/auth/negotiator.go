package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/BreathCodeFlow/tide/internal/events"
)

// ErrAuthFailed indicates an invalid stored or entered secret. It fails
// the requesting task only, never the whole run.
var ErrAuthFailed = errors.New("authentication failed")

// ErrAbandoned indicates the user skipped or cancelled the interactive
// prompt. Pre-authorization treats this as advisory.
var ErrAbandoned = errors.New("user abandoned authentication")

// Negotiator establishes a valid elevated session using a three-tier
// strategy: cached session, stored secret, interactive prompt. Prompts
// only ever run on the coordinating goroutine; two tasks are never
// simultaneously negotiating elevation.
type Negotiator struct {
	store   SecretStore
	prompt  PromptSource
	bus     *events.Bus
	sudo    elevator
	out     io.Writer
	verbose bool
}

// NewNegotiator creates a negotiator backed by the system sudo binary.
func NewNegotiator(store SecretStore, prompt PromptSource, bus *events.Bus, verbose bool) *Negotiator {
	return &Negotiator{
		store:   store,
		prompt:  prompt,
		bus:     bus,
		sudo:    sudoElevator{},
		out:     os.Stdout,
		verbose: verbose,
	}
}

// HasCachedSession reports whether elevation would currently succeed
// without prompting.
func (n *Negotiator) HasCachedSession(ctx context.Context) bool {
	return n.sudo.CheckCached(ctx)
}

// PreAuthorize establishes an elevated session before any task runs,
// front-loading the one unavoidable interactive moment. Returns
// ErrAbandoned if the user skips, ErrAuthFailed on a wrong password.
// Callers treat any error as advisory: tasks needing elevation retry
// negotiation individually.
func (n *Negotiator) PreAuthorize(ctx context.Context, label string) error {
	if n.sudo.CheckCached(ctx) {
		if n.verbose {
			fmt.Fprintln(n.out, "✓ Sudo timestamp already valid")
		}
		return nil
	}

	if secret, err := n.store.Get(label); err == nil {
		ok, err := n.sudo.Authenticate(ctx, secret)
		if err != nil {
			return fmt.Errorf("validating stored secret: %w", err)
		}
		if ok {
			if n.verbose {
				fmt.Fprintln(n.out, "✓ Sudo authenticated via keychain")
			}
			return nil
		}
		if n.verbose {
			fmt.Fprintln(n.out, "⚠️  Keychain password is outdated, prompting for new password")
		}
	}

	fmt.Fprintln(n.out, "🔐 Some tasks may require sudo privileges.")
	n.bus.Publish(events.TopicAuth, events.ElevationRequiredEvent{Timestamp: time.Now()})

	secret, err := n.prompt.Password("Enter sudo password (or press Ctrl+C to skip)")
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			fmt.Fprintln(n.out, "Sudo authentication cancelled.")
			return ErrAbandoned
		}
		return fmt.Errorf("reading password: %w", err)
	}
	if secret == "" {
		fmt.Fprintln(n.out, "Skipping sudo authentication.")
		return ErrAbandoned
	}

	ok, err := n.sudo.Authenticate(ctx, secret)
	if err != nil {
		return fmt.Errorf("validating password: %w", err)
	}
	if !ok {
		return ErrAuthFailed
	}

	if n.verbose {
		fmt.Fprintln(n.out, "✓ Sudo authenticated successfully")
	}

	n.offerToPersist(label, secret)
	return nil
}

// RunElevated executes args under elevation, negotiating a session with
// the same three-tier order as PreAuthorize. An invalid stored or
// entered secret yields ErrAuthFailed.
func (n *Negotiator) RunElevated(ctx context.Context, args []string, label string) (string, error) {
	if n.sudo.CheckCached(ctx) {
		return n.execute(ctx, args)
	}

	if secret, err := n.store.Get(label); err == nil {
		ok, err := n.sudo.Authenticate(ctx, secret)
		if err != nil {
			return "", fmt.Errorf("validating stored secret: %w", err)
		}
		if ok {
			return n.execute(ctx, args)
		}
	}

	secret, err := n.prompt.Password("Enter sudo password")
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return "", ErrAuthFailed
		}
		return "", fmt.Errorf("reading password: %w", err)
	}

	ok, err := n.sudo.Authenticate(ctx, secret)
	if err != nil {
		return "", fmt.Errorf("validating password: %w", err)
	}
	if !ok {
		return "", ErrAuthFailed
	}

	n.offerToPersist(label, secret)
	return n.execute(ctx, args)
}

// execute runs args under the already-negotiated session.
func (n *Negotiator) execute(ctx context.Context, args []string) (string, error) {
	stdout, stderr, err := n.sudo.Execute(ctx, args)
	if err != nil {
		return "", fmt.Errorf("command failed: %s", string(stderr))
	}
	return string(stdout), nil
}

// offerToPersist asks whether to save a freshly entered secret when no
// stored entry exists yet. Persistence failure is logged, never fatal.
func (n *Negotiator) offerToPersist(label, secret string) {
	if n.store.Exists(label) {
		return
	}

	save, err := n.prompt.Confirm("Save password to keychain for future use?", true)
	if err != nil || !save {
		return
	}

	if err := n.store.Put(label, secret); err != nil {
		log.Printf("WARNING: failed to save password to keychain: %v", err)
		return
	}
	fmt.Fprintf(n.out, "✓ Password saved to keychain (service: %s)\n", label)
}
