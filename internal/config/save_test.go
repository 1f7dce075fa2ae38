package config

import (
	"path/filepath"
	"testing"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := Save(Default(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}

	def := Default()
	if len(cfg.Groups) != len(def.Groups) {
		t.Fatalf("expected %d groups, got %d", len(def.Groups), len(cfg.Groups))
	}
	if cfg.Groups[0].Name != "System Updates" {
		t.Errorf("first group = %q", cfg.Groups[0].Name)
	}
	if cfg.Settings.KeychainLabel != DefaultKeychainLabel {
		t.Errorf("KeychainLabel = %q", cfg.Settings.KeychainLabel)
	}

	task := cfg.Groups[0].Tasks[0]
	if !task.Sudo || !task.Required || task.Timeout != 3600 {
		t.Errorf("macOS update task not preserved: %+v", task)
	}
	if got := len(cfg.Groups[1].Tasks); got != 2 {
		t.Errorf("expected 2 Homebrew tasks, got %d", got)
	}
}
