package ui

import (
	"fmt"
	"strings"

	"github.com/BreathCodeFlow/tide/internal/executor"
	"github.com/BreathCodeFlow/tide/internal/scheduler"
)

// Summary prints the aggregate run report: status counts, total wall
// time, the slowest task, and the failed tasks with their reasons.
func (p *Printer) Summary(s scheduler.Summary) {
	p.line()
	p.line(p.paint(StyleHeader, "📊 Summary"))
	p.line(p.rule())

	p.linef("  %s  %s  %s  ⏱️  Total: %s",
		p.paint(StyleSuccess, fmt.Sprintf("✓ %d Success", s.Succeeded)),
		p.paint(StyleFailed, fmt.Sprintf("✗ %d Failed", s.Failed)),
		p.paint(StyleSkipped, fmt.Sprintf("○ %d Skipped", s.Skipped)),
		p.paint(StyleEmphasis, executor.FormatDuration(s.TotalElapsed)))

	if s.Longest.Name != "" {
		p.linef("  Longest task: %s [%s in %s]",
			p.paint(StyleEmphasis, executor.FormatDuration(s.Longest.Duration)),
			p.paint(StyleEmphasis, s.Longest.Name),
			p.paint(StyleDim, groupLabel(s.Longest.Group, s.Longest.GroupIcon)))
	}

	if len(s.Failures) > 0 {
		p.line()
		p.line(p.paint(StyleFailed, "Failed tasks:"))
		for _, f := range s.Failures {
			p.linef("  ✗ %s - %s", p.paint(StyleFailed, f.Name), p.paint(StyleDim, f.Group))
			if f.Reason != "" {
				p.linef("    %s", p.paint(StyleDim, f.Reason))
			}
		}
	}
}

func groupLabel(name, icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return name
	}
	return icon + " " + name
}
