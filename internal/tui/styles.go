package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	imageFg   = lipgloss.Color("#38BDF8")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	dialogStyle = boxStyle.BorderForeground(accentFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle    = lipgloss.NewStyle().Foreground(errorFg)

	selectedStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	hoverStyle    = lipgloss.NewStyle().Foreground(hoverFg)
	labelStyle    = lipgloss.NewStyle().Foreground(baseFg).Bold(true)
	imageStyle    = lipgloss.NewStyle().Foreground(imageFg)
)
