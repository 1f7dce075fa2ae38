package main

import (
	"reflect"
	"testing"

	"github.com/BreathCodeFlow/tide/internal/config"
)

func TestParseArgsDefaults(t *testing.T) {
	args, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if args.quiet || args.dryRun || args.force || args.verbose || args.list || args.initConfig {
		t.Errorf("unexpected flags set: %+v", args)
	}
	if args.parallel != config.DefaultParallelLimit {
		t.Errorf("parallel = %d, want %d", args.parallel, config.DefaultParallelLimit)
	}
	if args.groups != nil || args.skipGroups != nil {
		t.Errorf("group filters should default to nil: %+v", args)
	}
}

func TestParseArgsLongForms(t *testing.T) {
	args, err := parseArgs([]string{
		"--quiet", "--dry-run", "--force", "--verbose",
		"--groups", "Homebrew,System", "--skip-groups", "Cleanup",
		"--parallel", "8", "--config", "/tmp/custom.toml",
	})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if !args.quiet || !args.dryRun || !args.force || !args.verbose {
		t.Errorf("flags not set: %+v", args)
	}
	if !reflect.DeepEqual(args.groups, []string{"Homebrew", "System"}) {
		t.Errorf("groups = %v", args.groups)
	}
	if !reflect.DeepEqual(args.skipGroups, []string{"Cleanup"}) {
		t.Errorf("skipGroups = %v", args.skipGroups)
	}
	if args.parallel != 8 {
		t.Errorf("parallel = %d", args.parallel)
	}
	if args.configPath != "/tmp/custom.toml" {
		t.Errorf("configPath = %q", args.configPath)
	}
}

func TestParseArgsShortForms(t *testing.T) {
	args, err := parseArgs([]string{"-q", "-n", "-f", "-v", "-l", "-j", "2", "-g", "Homebrew"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if !args.quiet || !args.dryRun || !args.force || !args.verbose || !args.list {
		t.Errorf("flags not set: %+v", args)
	}
	if args.parallel != 2 {
		t.Errorf("parallel = %d", args.parallel)
	}
	if !reflect.DeepEqual(args.groups, []string{"Homebrew"}) {
		t.Errorf("groups = %v", args.groups)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , b ,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
