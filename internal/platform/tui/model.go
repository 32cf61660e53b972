// Package tui provides an interactive full-screen board built on Bubble Tea.
// It drives the same game.Game as the line-based console loop.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/codenames/internal/core"
	"github.com/vovakirdan/codenames/internal/game"
	"github.com/vovakirdan/codenames/internal/palette"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model for the board.
type Model struct {
	game     *game.Game
	colors   palette.Colorizer
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	cursor   core.Cell
	quitting bool
}

// NewModel creates a model over g with the cursor on the top-left cell.
func NewModel(g *game.Game, colors palette.Colorizer, logger *log.Logger) Model {
	if colors == nil {
		colors = palette.Plain{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   g,
		colors: colors,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Cursor returns the selected cell.
func (m Model) Cursor() core.Cell {
	return m.cursor
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.cursor.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.cursor.Move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.cursor = m.cursor.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = m.cursor.Move(0, 1)
	default:
		if l, ok := m.keys.labelFor(msg); ok {
			m.game.SetLabel(m.cursor, l)
			m.logger.Debug("label set", "board", m.game.ID(), "cell", m.cursor.String(), "label", l.String())
		}
	}
	return m, nil
}

// View renders the board, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.game.RenderCursor(m.colors, m.cursor))
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// status describes the selected cell and the label tally.
func (m Model) status() string {
	word := m.game.Word(m.cursor.Row, m.cursor.Col)
	label := m.game.ColorAt(m.cursor.Row, m.cursor.Col)

	counts := m.game.Counts()
	tally := make([]string, 0, len(core.Labels))
	for _, l := range core.Labels {
		tally = append(tally, fmt.Sprintf("%s %d", l, counts[l]))
	}
	return fmt.Sprintf("%s %s (%s)  %s", m.cursor, word, label, strings.Join(tally, " · "))
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, colors palette.Colorizer, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, colors, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
