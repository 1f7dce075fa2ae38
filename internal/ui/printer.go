package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled terminal output. With colors disabled every
// style collapses to plain text, which also keeps test output stable.
type Printer struct {
	out    io.Writer
	colors bool
}

// NewPrinter creates a printer over the given writer.
func NewPrinter(out io.Writer, colors bool) *Printer {
	return &Printer{out: out, colors: colors}
}

func (p *Printer) paint(style lipgloss.Style, text string) string {
	if !p.colors {
		return text
	}
	return style.Render(text)
}

func (p *Printer) line(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Printer) linef(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// rule renders the section divider used under headers.
func (p *Printer) rule() string {
	return p.paint(StyleDim, strings.Repeat("─", 60))
}
