package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StatusStyle for status information
	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ActiveStyle for enabled toggles
	ActiveStyle = lipgloss.NewStyle().
			Foreground(ColorActive)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Padding(0, 2)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(2).
			PaddingLeft(2)

	// PulseStyle for the activity indicator
	PulseStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)
)
