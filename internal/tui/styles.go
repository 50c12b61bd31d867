// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#7D56F4")
	colorMuted  = lipgloss.Color("241")
	colorError  = lipgloss.Color("#FF5F87")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	bookTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	linkStyle      = lipgloss.NewStyle().Foreground(colorAccent).Underline(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	enabledStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	disabledStyle = lipgloss.NewStyle().Foreground(colorMuted).Faint(true)
)
