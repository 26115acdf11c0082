package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding

	// Actions
	Edit       key.Binding
	AddItem    key.Binding
	RemoveItem key.Binding
	Currency   key.Binding
	Locale     key.Binding
	Export     key.Binding
	Reset      key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	AddItem:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	RemoveItem: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove item")),
	Currency:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "currency")),
	Locale:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "locale")),
	Export:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
}
