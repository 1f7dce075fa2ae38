package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading "~" or "~/" to the user's home
// directory. Paths without a tilde prefix are returned unchanged, as is
// anything when the home directory cannot be determined.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ResolveLogPath expands and resolves the configured log file path.
// Relative paths are anchored at the config file's directory.
func ResolveLogPath(logFile, configPath string) string {
	trimmed := strings.TrimSpace(logFile)
	if trimmed == "" {
		return ""
	}

	expanded := ExpandTilde(trimmed)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(filepath.Dir(configPath), expanded)
}
