// Package ui holds the lipgloss styles shared by the hook binaries.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorGreen  = lipgloss.Color("#00FF00")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorRed    = lipgloss.Color("#FF0000")
	ColorCyan   = lipgloss.Color("#00FFFF")
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	FailureStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	HeadingStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
)
