package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	freeColor    = lipgloss.Color("#04B575")
	usedColor    = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	// Word grid cells
	freeCellStyle = lipgloss.NewStyle().Foreground(freeColor)
	usedCellStyle = lipgloss.NewStyle().Foreground(usedColor)

	// Status bar
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(usedColor).
			Bold(true)
)
