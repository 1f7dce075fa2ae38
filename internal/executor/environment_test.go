package executor

import (
	"strings"
	"testing"
)

func existsSet(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func pathEntry(env []string, t *testing.T) string {
	t.Helper()
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			return kv[len("PATH="):]
		}
	}
	t.Fatal("no PATH entry in environment")
	return ""
}

func TestBuildEnvironmentAppleSiliconBrew(t *testing.T) {
	base := []string{"HOME=/Users/x", "PATH=/usr/bin:/bin"}
	env := buildEnvironment(base, "", existsSet("/opt/homebrew/bin/brew"))

	if got := pathEntry(env, t); !strings.HasPrefix(got, "/opt/homebrew/bin:") {
		t.Errorf("PATH = %q, want /opt/homebrew/bin first", got)
	}
}

func TestBuildEnvironmentIntelBrew(t *testing.T) {
	base := []string{"PATH=/usr/bin"}
	env := buildEnvironment(base, "", existsSet("/usr/local/bin/brew"))

	if got := pathEntry(env, t); !strings.HasPrefix(got, "/usr/local/bin:") {
		t.Errorf("PATH = %q, want /usr/local/bin first", got)
	}
}

func TestBuildEnvironmentLocalBin(t *testing.T) {
	base := []string{"PATH=/usr/bin"}
	env := buildEnvironment(base, "/Users/x", existsSet("/Users/x/.local/bin"))

	if got := pathEntry(env, t); !strings.HasPrefix(got, "/Users/x/.local/bin:") {
		t.Errorf("PATH = %q, want ~/.local/bin first", got)
	}
}

func TestBuildEnvironmentNoExtraDirs(t *testing.T) {
	base := []string{"PATH=/usr/bin:/bin", "HOME=/Users/x"}
	env := buildEnvironment(base, "/Users/x", existsSet())

	if got := pathEntry(env, t); got != "/usr/bin:/bin" {
		t.Errorf("PATH = %q, want unchanged", got)
	}
}

func TestBuildEnvironmentDoesNotMutateBase(t *testing.T) {
	base := []string{"PATH=/usr/bin"}
	buildEnvironment(base, "", existsSet("/opt/homebrew/bin/brew"))

	if base[0] != "PATH=/usr/bin" {
		t.Errorf("base environment mutated: %q", base[0])
	}
}

func TestPrependPathCreatesMissingEntry(t *testing.T) {
	env := prependPath([]string{"HOME=/Users/x"}, "/opt/homebrew/bin")

	if got := pathEntry(env, t); got != "/opt/homebrew/bin" {
		t.Errorf("PATH = %q", got)
	}
}

func TestPrependPathEmptyValue(t *testing.T) {
	env := prependPath([]string{"PATH="}, "/usr/local/bin")

	if got := pathEntry(env, t); got != "/usr/local/bin" {
		t.Errorf("PATH = %q", got)
	}
}
