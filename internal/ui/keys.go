package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the bindings available outside the picker
type keyMap struct {
	Browse key.Binding
	Close  key.Binding
	View   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Browse: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "browse"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close picker"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view selection"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Browse, k.View, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Browse, k.Close},
		{k.View, k.Help, k.Quit},
	}
}
