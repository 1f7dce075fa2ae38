package ui

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// SystemInfo prints disk, battery, OS version, and uptime read from the
// usual macOS command-line tools. Every probe is best-effort; a tool
// that is missing or fails is silently omitted.
func (p *Printer) SystemInfo() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p.line()
	p.line(p.paint(StyleHeader, "📊 System Information"))
	p.line(p.rule())

	if out, err := exec.CommandContext(ctx, "df", "-h", "/").Output(); err == nil {
		if used, total, pct, ok := parseDiskUsage(string(out)); ok {
			p.linef("  💾 Disk: %s used of %s (%s)",
				p.paint(StyleEmphasis, used),
				p.paint(StyleEmphasis, total),
				p.paint(StyleWarning, pct))
		}
	}

	if out, err := exec.CommandContext(ctx, "pmset", "-g", "batt").Output(); err == nil {
		if pct, status, ok := parseBattery(string(out)); ok {
			p.linef("  🔋 Power: %s%% %s", p.paint(StyleEmphasis, pct), status)
		}
	}

	if out, err := exec.CommandContext(ctx, "sw_vers", "-productVersion").Output(); err == nil {
		if version := strings.TrimSpace(string(out)); version != "" {
			p.linef("  🍎 macOS: %s", p.paint(StyleEmphasis, version))
		}
	}

	if out, err := exec.CommandContext(ctx, "uptime").Output(); err == nil {
		if up, ok := parseUptime(string(out)); ok {
			p.linef("  ⏱️  Uptime: %s", p.paint(StyleEmphasis, up))
		}
	}
}

// parseDiskUsage extracts used, total, and capacity from the second
// line of `df -h /` output.
func parseDiskUsage(out string) (used, total, pct string, ok bool) {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return "", "", "", false
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 5 {
		return "", "", "", false
	}
	return fields[2], fields[1], fields[4], true
}

// parseBattery extracts the charge percentage and charging state from
// `pmset -g batt` output. Desktops without a battery report nothing.
func parseBattery(out string) (pct, status string, ok bool) {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return "", "", false
	}
	line := lines[1]

	end := strings.Index(line, "%")
	if end < 0 {
		return "", "", false
	}
	start := end
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}
	if start == end {
		return "", "", false
	}

	switch {
	case strings.Contains(line, "discharging"):
		status = "battery 🔋"
	case strings.Contains(line, "charging"):
		status = "charging ⚡"
	case strings.Contains(line, "charged"):
		status = "charged ✅"
	default:
		status = "battery 🔋"
	}
	return line[start:end], status, true
}

// parseUptime extracts the first uptime component from `uptime` output,
// e.g. "3 days" from "10:32  up 3 days, 2:14, 2 users, ...".
func parseUptime(out string) (string, bool) {
	pos := strings.Index(out, "up ")
	if pos < 0 {
		return "", false
	}
	rest := out[pos+len("up "):]
	comma := strings.Index(rest, ",")
	if comma < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:comma]), true
}
