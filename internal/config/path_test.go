package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/work", filepath.Join(home, "work")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"}, // named-user expansion unsupported
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandTilde(tt.input); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveLogPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name       string
		logFile    string
		configPath string
		want       string
	}{
		{"empty", "", "/etc/tide/config.toml", ""},
		{"whitespace only", "   ", "/etc/tide/config.toml", ""},
		{"absolute", "/var/log/tide.log", "/etc/tide/config.toml", "/var/log/tide.log"},
		{"relative anchors at config dir", "tide.log", "/etc/tide/config.toml", "/etc/tide/tide.log"},
		{"tilde", "~/tide.log", "/etc/tide/config.toml", filepath.Join(home, "tide.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLogPath(tt.logFile, tt.configPath); got != tt.want {
				t.Errorf("ResolveLogPath(%q, %q) = %q, want %q", tt.logFile, tt.configPath, got, tt.want)
			}
		})
	}
}
