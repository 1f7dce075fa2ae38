package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Status styles
var (
	StyleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true)

	StyleFailed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	StyleSkipped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	StyleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))
)

// Text styles
var (
	StyleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	StyleBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	StyleEmphasis = lipgloss.NewStyle().
			Bold(true)

	StyleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
