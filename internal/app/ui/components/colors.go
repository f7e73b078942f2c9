package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the panel chrome; log lines carry their own color pairs
const (
	ColorPrimary = lipgloss.Color("#FA01C2") // Magenta - title and activity pulse
	ColorMuted   = lipgloss.Color("7")       // Light gray - status text
	ColorBorder  = lipgloss.Color("8")       // Gray - separators and help text
	ColorActive  = lipgloss.Color("#A3E92D") // Green - enabled toggles
	ColorFailed  = lipgloss.Color("#FF6347") // Tomato - failed actions
)

// SeparatorColor is the adaptive color for header and footer rules
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
