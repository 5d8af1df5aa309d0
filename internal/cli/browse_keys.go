package cli

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap lists the bindings of the browse view. Its help switches
// between the browsing and dragging sets.
type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Grab    key.Binding
	Before  key.Binding
	Inside  key.Binding
	After   key.Binding
	Drop    key.Binding
	Cancel  key.Binding
	Refresh key.Binding
	Quit    key.Binding

	dragging bool
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fold")),
		Grab:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up")),
		Before:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "before")),
		Inside:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inside")),
		After:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "after")),
		Drop:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	if k.dragging {
		return []key.Binding{k.Up, k.Down, k.Before, k.Inside, k.After, k.Drop, k.Cancel}
	}
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Grab, k.Refresh, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Refresh, k.Quit},
		{k.Grab, k.Before, k.Inside, k.After, k.Drop, k.Cancel},
	}
}
