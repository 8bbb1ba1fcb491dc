package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextHabit  key.Binding
	PrevHabit  key.Binding
	NextReport key.Binding
	PrevReport key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextHabit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next habit"),
		),
		PrevHabit: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev habit"),
		),
		NextReport: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next report"),
		),
		PrevReport: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev report"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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
