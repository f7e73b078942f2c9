package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"consolelog/internal/app/display"
	"consolelog/internal/app/ui/components"
	"consolelog/internal/config"
)

// View returns the rendered panel
func (m *Model) View() string {
	header := components.RenderHeader(m.width, components.TitleStyle.Render(config.AppName), m.status())
	footer := components.RenderFooter(m.width, m.notice, m.help.View(m.keys))

	body := m.viewport.View()
	if m.buffer.TotalLines() == 0 {
		body = components.EmptyStateStyle.Render("Waiting for log entries…")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// status renders the header info section
func (m *Model) status() string {
	parts := []string{
		components.StatusStyle.Render(fmt.Sprintf("%d lines", m.buffer.TotalLines())),
		toggle("verbose", m.verbosity.Enabled()),
		toggle("follow", m.autoscroll),
	}

	if m.pending > 0 {
		parts = append(parts, m.pulse.Render(components.PulseStyle)+components.StatusStyle.Render(fmt.Sprintf(" %d new", m.pending)))
	}

	return strings.Join(parts, components.StatusStyle.Render(" · "))
}

func toggle(name string, on bool) string {
	if on {
		return components.ActiveStyle.Render(name)
	}

	return components.StatusStyle.Render(name)
}

// renderLines renders every retained line in its color pair over the console background
func (m *Model) renderLines() string {
	width := m.viewport.Width
	if width <= 0 {
		width = components.DefaultViewportWidth
	}

	fill := lipgloss.NewStyle().Background(m.styles.Background())

	var builder strings.Builder

	for i, line := range m.buffer.Lines() {
		if i > 0 {
			builder.WriteRune('\n')
		}

		builder.WriteString(renderLine(line, width, fill))
	}

	return builder.String()
}

func renderLine(line display.Line, width int, fill lipgloss.Style) string {
	text := components.Truncate(line.Text, width)

	var rendered string
	if text != "" {
		rendered = line.Pair.Style().Render(text)
	}

	if pad := width - lipgloss.Width(text); pad > 0 {
		rendered += fill.Render(strings.Repeat(" ", pad))
	}

	return rendered
}
