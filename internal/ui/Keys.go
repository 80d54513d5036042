package ui

import (
	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the in-game bindings. It satisfies help.KeyMap so the status
// panel can print them.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func NewKeyMap(keys config.Keys) KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys(keys.Up...), key.WithHelp(helpKey(keys.Up), "up")),
		Down:    key.NewBinding(key.WithKeys(keys.Down...), key.WithHelp(helpKey(keys.Down), "down")),
		Left:    key.NewBinding(key.WithKeys(keys.Left...), key.WithHelp(helpKey(keys.Left), "left")),
		Right:   key.NewBinding(key.WithKeys(keys.Right...), key.WithHelp(helpKey(keys.Right), "right")),
		Start:   key.NewBinding(key.WithKeys(keys.Start...), key.WithHelp(helpKey(keys.Start), "start")),
		Pause:   key.NewBinding(key.WithKeys(keys.Pause...), key.WithHelp(helpKey(keys.Pause), "pause")),
		Restart: key.NewBinding(key.WithKeys(keys.Restart...), key.WithHelp(helpKey(keys.Restart), "restart")),
		Quit:    key.NewBinding(key.WithKeys(keys.Quit...), key.WithHelp(helpKey(keys.Quit), "quit")),
	}
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Restart, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// direction reports the heading a key press asks for, if any.
func (k KeyMap) direction(msg tea.KeyMsg) (game.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.Up, true
	case key.Matches(msg, k.Down):
		return game.Down, true
	case key.Matches(msg, k.Left):
		return game.Left, true
	case key.Matches(msg, k.Right):
		return game.Right, true
	}
	return game.Direction{}, false
}
