package app

import "charm.land/bubbles/v2/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Global
	Quit      key.Binding
	About     key.Binding
	NextPane  key.Binding
	CopyLabel key.Binding

	// List layout
	MoreColumns  key.Binding
	FewerColumns key.Binding
	LessGap      key.Binding
	MoreGap      key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
		About: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch list"),
		),
		CopyLabel: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		MoreColumns: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "columns"),
		),
		FewerColumns: key.NewBinding(
			key.WithKeys("-"),
		),
		LessGap: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "gap"),
		),
		MoreGap: key.NewBinding(
			key.WithKeys("]"),
		),
	}
}
