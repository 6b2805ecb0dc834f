package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home      key.Binding
	Context   key.Binding
	Store     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Toggle    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("1", "h"), key.WithHelp("1", "home")),
		Context:   key.NewBinding(key.WithKeys("2", "c"), key.WithHelp("2", "context")),
		Store:     key.NewBinding(key.WithKeys("3", "s"), key.WithHelp("3", "store")),
		Next:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next page")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "previous page")),
		Increment: key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "_", "down", "j"), key.WithHelp("-", "decrement")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset (store)")),
		Toggle:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Increment, k.Decrement, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Context, k.Store, k.Next, k.Prev},
		{k.Increment, k.Decrement, k.Reset, k.Toggle},
		{k.Help, k.Quit},
	}
}
