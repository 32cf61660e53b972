package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codenames/internal/core"
)

// KeyMap holds the board key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Red    key.Binding
	Blue   key.Binding
	Yellow key.Binding
	White  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns arrow/vim movement and r/b/y/w labelling.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Red: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "red"),
		),
		Blue: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blue"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yellow"),
		),
		White: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "white"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Red, k.Blue, k.Yellow, k.White, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Red, k.Blue, k.Yellow, k.White},
		{k.Help, k.Quit},
	}
}

// labelFor returns the label bound to msg, if any.
func (k KeyMap) labelFor(msg tea.KeyMsg) (core.Label, bool) {
	switch {
	case key.Matches(msg, k.Red):
		return core.LabelRed, true
	case key.Matches(msg, k.Blue):
		return core.LabelBlue, true
	case key.Matches(msg, k.Yellow):
		return core.LabelYellow, true
	case key.Matches(msg, k.White):
		return core.LabelWhite, true
	}
	return core.LabelWhite, false
}
