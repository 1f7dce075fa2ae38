package ui

import (
	"strings"

	"github.com/BreathCodeFlow/tide/internal/config"
)

// TaskList prints every configured group and task, including disabled
// ones, honoring the include/exclude group filters. With verbose on it
// also shows descriptions and commands.
func (p *Printer) TaskList(cfg config.Config, include, exclude []string, verbose bool) {
	p.line(p.paint(StyleHeader, "📋 Configured Tasks"))
	p.line(p.paint(StyleHeader, strings.Repeat("═", 60)))

	for _, group := range cfg.Groups {
		if len(include) > 0 && !matchesFold(include, group.Name) {
			continue
		}
		if matchesFold(exclude, group.Name) {
			continue
		}

		p.line()
		p.linef("%s %s %s", group.Icon, p.paint(StyleEmphasis, group.Name), p.enabledMark(group.Enabled))
		if group.Description != "" {
			p.linef("  %s", p.paint(StyleDim, group.Description))
		}

		for _, task := range group.Tasks {
			requiredMark := "⚪"
			if task.Required {
				requiredMark = "🔴"
			}
			sudoMark := "  "
			if task.Sudo {
				sudoMark = "🔐"
			}

			p.linef("  %s %s %s %s %s", p.enabledMark(task.Enabled), requiredMark, sudoMark, task.Icon, p.paint(StyleEmphasis, task.Name))

			if verbose {
				if task.Description != "" {
					p.linef("      %s", p.paint(StyleDim, task.Description))
				}
				p.linef("      Command: %s", p.paint(StyleDim, strings.Join(task.Command, " ")))
			}
		}
	}

	p.line()
	p.line(p.paint(StyleDim, "Legend:"))
	p.linef("  %s Enabled/Disabled", p.paint(StyleDim, "✓/✗"))
	p.linef("  %s Required task", p.paint(StyleDim, "🔴"))
	p.linef("  %s Optional task", p.paint(StyleDim, "⚪"))
	p.linef("  %s Requires sudo", p.paint(StyleDim, "🔐"))
	p.line()
}

func (p *Printer) enabledMark(enabled bool) string {
	if enabled {
		return p.paint(StyleSuccess, "✓")
	}
	return p.paint(StyleFailed, "✗")
}

func matchesFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}
