package ui

import (
	"fmt"

	"github.com/BreathCodeFlow/tide/internal/events"
	"github.com/BreathCodeFlow/tide/internal/executor"
)

// Progress renders live task status lines from the event bus. Results
// arrive out of order under parallel execution, so each line is
// self-contained rather than an updated spinner row.
type Progress struct {
	printer *Printer
	done    chan struct{}
}

// NewProgress subscribes to task events and starts rendering.
func NewProgress(bus *events.Bus, printer *Printer) *Progress {
	p := &Progress{
		printer: printer,
		done:    make(chan struct{}),
	}
	ch := bus.Subscribe(events.TopicTask, 256)
	go p.loop(ch)
	return p
}

// Wait blocks until the event bus closes and all pending lines are
// flushed.
func (p *Progress) Wait() {
	<-p.done
}

func (p *Progress) loop(ch <-chan events.Event) {
	defer close(p.done)

	for ev := range ch {
		switch e := ev.(type) {
		case events.TaskStartedEvent:
			label := groupLabel(e.Group, e.GroupIcon)
			p.printer.linef("%s %s", p.printer.paint(StyleDim, "▶ ["+label+"]"), e.Name)
		case events.TaskFinishedEvent:
			p.finished(e)
		case events.SudoLintWarningEvent:
			p.printer.line(p.printer.paint(StyleWarning,
				fmt.Sprintf("⚠️  Task '%s' may require sudo - consider setting sudo = true", e.Name)))
		}
	}
}

func (p *Progress) finished(e events.TaskFinishedEvent) {
	duration := executor.FormatDuration(e.Duration)
	switch e.Status {
	case executor.StatusSuccess.String():
		p.printer.linef("%s %s %s", p.printer.paint(StyleSuccess, "✓"), e.Name, p.printer.paint(StyleDim, "("+duration+")"))
	case executor.StatusFailed.String():
		p.printer.linef("%s %s %s", p.printer.paint(StyleFailed, "✗"), e.Name, p.printer.paint(StyleDim, "("+duration+")"))
		if e.Reason != "" {
			p.printer.linef("  %s", p.printer.paint(StyleDim, e.Reason))
		}
	case executor.StatusSkipped.String():
		reason := e.Reason
		if reason != "" {
			reason = " - " + reason
		}
		p.printer.linef("%s %s%s", p.printer.paint(StyleSkipped, "○"), e.Name, p.printer.paint(StyleDim, reason))
	}
}
