package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorRunning = lipgloss.Color("#10B981")
	colorPaused  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	CaretStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	CellStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ActiveCellStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	PausedBadgeStyle = lipgloss.NewStyle().
				Foreground(colorPaused).
				Bold(true)

	RunningBadgeStyle = lipgloss.NewStyle().
				Foreground(colorRunning).
				Bold(true)

	HaltedBadgeStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
