// Package auth negotiates elevated-privilege sessions before and during
// task execution, so no spawned command ever blocks on a password
// prompt it cannot answer.
package auth

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned by SecretStore.Get when no entry exists for
// the label.
var ErrNotFound = errors.New("keychain entry not found")

// SecretStore is an opaque label -> secret lookup. The production
// implementation is the macOS keychain; tests substitute an in-memory
// fake.
type SecretStore interface {
	Exists(label string) bool
	Get(label string) (string, error)
	Put(label, secret string) error
}

// KeychainStore stores secrets in the macOS keychain via the security
// CLI, under the fixed account "root".
type KeychainStore struct{}

// Exists reports whether a keychain entry exists for the label.
func (KeychainStore) Exists(label string) bool {
	cmd := exec.Command("security", "find-generic-password", "-s", label, "-a", "root")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// Get returns the secret stored under the label.
func (KeychainStore) Get(label string) (string, error) {
	out, err := exec.Command("security", "find-generic-password", "-s", label, "-a", "root", "-w").Output()
	if err != nil {
		return "", ErrNotFound
	}
	return strings.TrimSpace(string(out)), nil
}

// Put stores the secret under the label.
func (KeychainStore) Put(label, secret string) error {
	cmd := exec.Command("security", "add-generic-password", "-s", label, "-a", "root", "-w", secret)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("saving password to keychain: %w", err)
	}
	return nil
}

// CommandExists reports whether an executable is reachable on PATH.
// Used for task precondition checks.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
