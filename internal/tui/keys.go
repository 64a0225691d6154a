package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings understood by the host.
type KeyMap struct {
	Back        key.Binding
	Next        key.Binding
	Select      key.Binding
	Orientation key.Binding
	Alignment   key.Binding
	Variant     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select step"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		Alignment: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "alignment"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "mobile variant"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Next, k.Select},
		{k.Orientation, k.Alignment, k.Variant},
		{k.Help, k.Quit},
	}
}
