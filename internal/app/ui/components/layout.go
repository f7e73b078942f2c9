package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"consolelog/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders "─── title ──── info ───", truncating title to keep info visible
func RenderHeader(width int, title, info string) string {
	room := width - lipgloss.Width(info) - HeaderSeparatorMinWidth - HeaderFixedChars
	if room > 0 {
		title = Truncate(title, room)
	}

	fill := width - lipgloss.Width(title) - lipgloss.Width(info) - HeaderFixedChars

	return strings.Join([]string{RenderLine(3), title, rule(fill, HeaderSeparatorMinWidth), info, RenderLine(3)}, " ")
}

// RenderFooter renders a rule ending in the version (prefixed by notice) above the help line
func RenderFooter(width int, notice, helpText string) string {
	label := "v" + config.Version
	if notice != "" {
		label = notice + "  " + label
	}

	fill := width - lipgloss.Width(label) - FooterFixedChars
	top := strings.Join([]string{rule(fill, FooterSeparatorMinWidth), label, RenderLine(3)}, " ")

	return lipgloss.JoinVertical(lipgloss.Left, top, HelpStyle.Render(helpText))
}

func rule(width, minWidth int) string {
	return RenderLine(max(width, minWidth))
}

// Truncate shortens s to maxWidth display cells, ending with an ellipsis when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}
