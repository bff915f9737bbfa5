package ui

import "github.com/charmbracelet/bubbles/key"

type homeKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Book    key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Book, k.Logout, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Book, k.Logout, k.Quit},
	}
}

var homeKeys = homeKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next category"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous category"),
	),
	Book: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "book now"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "logout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

type bookingKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Slot   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k bookingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Slot, k.Submit, k.Cancel}
}

func (k bookingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Slot}, {k.Submit, k.Cancel}}
}

var bookingKeys = bookingKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Slot: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "change slot"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm booking"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
