package executor

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment resolves the effective environment for spawned tasks:
// the current process environment with the Homebrew bin directory and
// ~/.local/bin prepended to PATH when present. The snapshot is computed
// once and passed to every process; ambient process state is never
// mutated.
func Environment() []string {
	home, _ := os.UserHomeDir()
	return buildEnvironment(os.Environ(), home, pathExists)
}

// buildEnvironment is the testable core of Environment.
func buildEnvironment(base []string, home string, exists func(string) bool) []string {
	env := make([]string, len(base))
	copy(env, base)

	if exists("/opt/homebrew/bin/brew") {
		env = prependPath(env, "/opt/homebrew/bin")
	} else if exists("/usr/local/bin/brew") {
		env = prependPath(env, "/usr/local/bin")
	}

	if home != "" {
		localBin := filepath.Join(home, ".local", "bin")
		if exists(localBin) {
			env = prependPath(env, localBin)
		}
	}

	return env
}

// prependPath returns env with dir prepended to its PATH entry.
// A missing PATH entry is created.
func prependPath(env []string, dir string) []string {
	for i, kv := range env {
		if !strings.HasPrefix(kv, "PATH=") {
			continue
		}
		current := kv[len("PATH="):]
		if current == "" {
			env[i] = "PATH=" + dir
		} else {
			env[i] = "PATH=" + dir + string(os.PathListSeparator) + current
		}
		return env
	}
	return append(env, "PATH="+dir)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
