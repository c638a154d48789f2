package inventory

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Inc, Dec, Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:  key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "increment")),
		Dec:  key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "decrement")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inc, k.Dec, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Inc, k.Dec}, {k.Help, k.Quit}}
}
