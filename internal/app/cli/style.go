package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"consolelog/internal/config"
)

// Headline and label styles for the help and version screens
var (
	headline = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FA01C2")).MarginTop(1)
	body     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	muted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9C9C9C"))
)

// Semantic styles
var (
	sectionHeader = headline.MarginBottom(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#63D3EA"))
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E1D570"))
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF6347"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FA01C2"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9C9C9C"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := body.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderHelp renders usage, flags and examples
func RenderHelp() string {
	row := func(name, desc string) string {
		return body.Render("  " + commandName.Render(fmt.Sprintf("%-28s", name)) + desc)
	}

	example := func(code, desc string) string {
		return body.Render("  " + exampleCode.Render(fmt.Sprintf("%-28s", code)) + muted.Render(desc))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		row("consolelog [run]", "Open the console panel"),
		row("consolelog init", "Generate consolelog.yaml"),
		row("consolelog version", "Show version"),
		sectionHeader.Render("Flags:"),
		row("-w, --watch <dir>", "Log file changes under dir"),
		row("--verbose", "Show debug output"),
		row("--no-ui", "Print to stdout without the TUI"),
		row("--save <file>", "Save the console on exit"),
		row("-f, --force", "Overwrite on init"),
		row("--dry-run", "Print instead of writing on init"),
		sectionHeader.Render("Examples:"),
		example("consolelog -w ./src", "Watch a source tree"),
		example("consolelog --no-ui --verbose", "Stream everything to stdout"),
		example("consolelog init --dry-run", "Preview the default config"),
	) + "\n"
}
