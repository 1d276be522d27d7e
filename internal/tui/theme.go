package tui

import "charm.land/lipgloss/v2"

// Color palette for the quiz player.
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
	colorText    = lipgloss.Color("#F8FAFC")
	colorDim     = lipgloss.Color("#94A3B8")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	bodyStyle     = lipgloss.NewStyle().Foreground(colorText)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	hintStyle     = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	correctStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	wrongStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
)
