// Package game holds the board: the sampled words and the label of every
// cell. It is pure state with no I/O; the console loop and the TUI both
// drive the same Game.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vovakirdan/codenames/internal/core"
)

// ErrNotEnoughWords is returned when a word list cannot fill the board.
var ErrNotEnoughWords = errors.New("game: not enough distinct words")

// Game is one board for the lifetime of a run.
//
// words and labels are parallel slices of length core.CellCount, indexed
// column-major (see core.Cell.Index).
type Game struct {
	id     string
	words  []string
	labels []core.Label
}

// New samples a board from words. A nil rng uses a time-based seed.
func New(words []string, rng *rand.Rand) (*Game, error) {
	board, err := Sample(words, core.CellCount, rng)
	if err != nil {
		return nil, err
	}
	return FromBoard(board)
}

// FromBoard builds a game from an already chosen board, given in storage
// order. All labels start white.
func FromBoard(board []string) (*Game, error) {
	if len(board) != core.CellCount {
		return nil, fmt.Errorf("game: board has %d words, want %d", len(board), core.CellCount)
	}
	return &Game{
		id:     uuid.NewString(),
		words:  append([]string(nil), board...),
		labels: make([]core.Label, core.CellCount),
	}, nil
}

// Sample draws n words from words without replacement. Repeated entries
// in words count once, so the result never holds the same word twice.
func Sample(words []string, n int, rng *rand.Rand) ([]string, error) {
	pool := lo.Uniq(words)
	if len(pool) < n {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughWords, n, len(pool))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	perm := rng.Perm(len(pool))
	chosen := make([]string, n)
	for i := range chosen {
		chosen[i] = pool[perm[i]]
	}
	return chosen, nil
}

// ID returns the identifier assigned to this board.
func (g *Game) ID() string {
	return g.id
}

// Words returns a copy of the board in storage order.
func (g *Game) Words() []string {
	return append([]string(nil), g.words...)
}

// Word returns the word at (row, col).
func (g *Game) Word(row, col int) string {
	return g.words[core.NewCell(row, col).Index()]
}

// ColorAt returns the label at (row, col).
func (g *Game) ColorAt(row, col int) core.Label {
	return g.labels[core.NewCell(row, col).Index()]
}

// SetColor parses label by its first letter and applies it to (row, col).
// Unrecognised input leaves the board unchanged and returns false.
func (g *Game) SetColor(row, col int, label string) bool {
	l, ok := core.ParseLabel(label)
	if !ok {
		return false
	}
	g.SetLabel(core.NewCell(row, col), l)
	return true
}

// SetLabel assigns l to cell.
func (g *Game) SetLabel(cell core.Cell, l core.Label) {
	g.labels[cell.Index()] = l
}

// Counts tallies how many cells carry each label.
func (g *Game) Counts() map[core.Label]int {
	counts := make(map[core.Label]int, len(core.Labels))
	for _, l := range core.Labels {
		counts[l] = 0
	}
	for _, l := range g.labels {
		counts[l]++
	}
	return counts
}
