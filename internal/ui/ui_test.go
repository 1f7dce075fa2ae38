package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/BreathCodeFlow/tide/internal/config"
	"github.com/BreathCodeFlow/tide/internal/events"
	"github.com/BreathCodeFlow/tide/internal/executor"
	"github.com/BreathCodeFlow/tide/internal/scheduler"
)

func plainPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, false), &buf
}

func TestBannerCarriesVersion(t *testing.T) {
	p, buf := plainPrinter()
	p.Banner()

	if !strings.Contains(buf.String(), "v"+Version) {
		t.Errorf("banner missing version:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Refresh your system") {
		t.Errorf("banner missing tagline:\n%s", buf.String())
	}
}

func listConfig() config.Config {
	return config.Config{
		Groups: []config.TaskGroup{
			{
				Name: "Homebrew", Icon: "🍺", Enabled: true, Description: "Package updates",
				Tasks: []config.Task{
					{Name: "Update brew", Command: []string{"brew", "update"}, Enabled: true, Required: true},
					{Name: "Cleanup", Command: []string{"brew", "cleanup"}, Enabled: false},
				},
			},
			{
				Name: "System", Icon: "🖥️", Enabled: true,
				Tasks: []config.Task{
					{Name: "Updates", Command: []string{"softwareupdate"}, Enabled: true, Sudo: true, Required: true},
				},
			},
		},
	}
}

func TestTaskListShowsAllTasks(t *testing.T) {
	p, buf := plainPrinter()
	p.TaskList(listConfig(), nil, nil, false)
	out := buf.String()

	for _, want := range []string{"Homebrew", "Update brew", "Cleanup", "System", "Updates", "Legend:"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "🔐") {
		t.Errorf("list missing sudo marker:\n%s", out)
	}
}

func TestTaskListHonorsGroupFilters(t *testing.T) {
	p, buf := plainPrinter()
	p.TaskList(listConfig(), []string{"homebrew"}, nil, false)
	out := buf.String()

	if !strings.Contains(out, "Homebrew") {
		t.Errorf("included group missing:\n%s", out)
	}
	if strings.Contains(out, "System") {
		t.Errorf("filtered group present:\n%s", out)
	}
}

func TestTaskListVerboseShowsCommands(t *testing.T) {
	p, buf := plainPrinter()
	p.TaskList(listConfig(), nil, nil, true)

	if !strings.Contains(buf.String(), "brew update") {
		t.Errorf("verbose list missing command:\n%s", buf.String())
	}
}

func TestSummaryOutput(t *testing.T) {
	s := scheduler.Summary{
		Total:        3,
		Succeeded:    1,
		Failed:       1,
		Skipped:      1,
		TotalElapsed: 65 * time.Second,
		Longest: executor.Result{
			Name: "slow", Group: "G", Duration: 40 * time.Second,
		},
		Failures: []scheduler.Failure{
			{Name: "bad", Group: "G", Reason: "exit status 1"},
		},
	}

	p, buf := plainPrinter()
	p.Summary(s)
	out := buf.String()

	for _, want := range []string{
		"✓ 1 Success", "✗ 1 Failed", "○ 1 Skipped", "Total: 1m 5s",
		"Longest task: 40s", "Failed tasks:", "bad", "exit status 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryWithoutFailuresOmitsFailedSection(t *testing.T) {
	p, buf := plainPrinter()
	p.Summary(scheduler.Summary{Total: 1, Succeeded: 1})

	if strings.Contains(buf.String(), "Failed tasks:") {
		t.Errorf("unexpected failed section:\n%s", buf.String())
	}
}

func TestProgressRendersLifecycle(t *testing.T) {
	bus := events.NewBus()
	p, buf := plainPrinter()
	progress := NewProgress(bus, p)

	bus.Publish(events.TopicTask, events.TaskStartedEvent{Name: "brew update", Group: "Homebrew", GroupIcon: "🍺"})
	bus.Publish(events.TopicTask, events.TaskFinishedEvent{
		Name: "brew update", Group: "Homebrew", Status: executor.StatusSuccess.String(), Duration: 2 * time.Second,
	})
	bus.Publish(events.TopicTask, events.TaskFinishedEvent{
		Name: "cleanup", Group: "Homebrew", Status: executor.StatusSkipped.String(), Reason: "Command 'brew' not found",
	})
	bus.Close()
	progress.Wait()

	out := buf.String()
	for _, want := range []string{"▶ [🍺 Homebrew]", "✓ brew update (2s)", "○ cleanup - Command 'brew' not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("progress missing %q:\n%s", want, out)
		}
	}
}

func TestProgressShowsFailureReason(t *testing.T) {
	bus := events.NewBus()
	p, buf := plainPrinter()
	progress := NewProgress(bus, p)

	bus.Publish(events.TopicTask, events.TaskFinishedEvent{
		Name: "bad", Group: "G", Status: executor.StatusFailed.String(), Reason: "command failed: boom",
	})
	bus.Close()
	progress.Wait()

	out := buf.String()
	if !strings.Contains(out, "✗ bad") || !strings.Contains(out, "command failed: boom") {
		t.Errorf("progress output:\n%s", out)
	}
}

func TestGroupLabel(t *testing.T) {
	tests := []struct {
		name, icon, want string
	}{
		{"Homebrew", "🍺", "🍺 Homebrew"},
		{"Homebrew", "", "Homebrew"},
		{"Homebrew", " ", "Homebrew"},
	}
	for _, tt := range tests {
		if got := groupLabel(tt.name, tt.icon); got != tt.want {
			t.Errorf("groupLabel(%q, %q) = %q, want %q", tt.name, tt.icon, got, tt.want)
		}
	}
}
