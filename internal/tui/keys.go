package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down    key.Binding
	Toggle      key.Binding
	Open, Close key.Binding
	Search      key.Binding
	Clear       key.Binding
	Reload      key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "details")),
		Close:     key.NewBinding(key.WithKeys("esc", "x", "enter"), key.WithHelp("esc", "close")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindings adapts a slice of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
