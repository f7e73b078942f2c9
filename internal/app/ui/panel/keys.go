package panel

import (
	"github.com/charmbracelet/bubbles/key"

	"consolelog/internal/app/ui/components"
)

// KeyMap defines the key bindings for the console panel
type KeyMap struct {
	components.KeyMap
	Autoscroll key.Binding
	Clear      key.Binding
	Save       key.Binding
	Verbose    key.Binding
}

// DefaultKeyMap returns the default key bindings for the console panel
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "scroll up")
	base.Down.SetHelp("↓/j", "scroll down")

	return KeyMap{
		KeyMap: base,
		Autoscroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscroll"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Verbose: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "verbose"),
		),
	}
}

// ShortHelp returns keybindings for the mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Autoscroll, k.Clear, k.Save, k.Verbose, k.Quit}
}

// FullHelp returns keybindings for the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Autoscroll, k.Clear, k.Save, k.Verbose, k.Quit, k.ForceQuit},
	}
}
