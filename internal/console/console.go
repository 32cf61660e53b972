// Package console runs the line-based command loop: pick a cell by
// "row,col", then give it a colour label.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/codenames/internal/core"
	"github.com/vovakirdan/codenames/internal/game"
	"github.com/vovakirdan/codenames/internal/palette"
)

// Messages shown for rejected input.
const (
	MsgWrongPosition = "Wrong position"
	MsgUnknownColour = "Colour unknown!"
)

const (
	positionPrompt = "Position (row,col) or quit: "
	colourPrompt   = "Colour (r/b/y/w): "
)

// ErrWrongPosition is returned by ParsePosition for unusable input.
var ErrWrongPosition = errors.New("console: wrong position")

// Loop reads commands from in and applies them to a game.
type Loop struct {
	game    *game.Game
	reader  *bufio.Reader
	out     io.Writer
	colors  palette.Colorizer
	logger  *log.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithColorizer sets how words are coloured. Defaults to palette.Plain.
func WithColorizer(c palette.Colorizer) Option {
	return func(l *Loop) {
		if c != nil {
			l.colors = c
		}
	}
}

// WithLogger sets the logger for debug output. Defaults to discarding.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loop over g reading from in and writing to out.
func New(g *game.Game, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		game:    g,
		reader:  bufio.NewReader(in),
		out:     out,
		colors:  palette.Plain{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run renders the board and processes commands until quit, exit or end
// of input. Bad positions and labels are reported and the loop carries on.
func (l *Loop) Run() error {
	for {
		fmt.Fprint(l.out, l.game.Render(l.colors))

		line, ok, err := l.prompt(positionPrompt)
		if err != nil || !ok {
			return err
		}
		if IsQuit(line) {
			l.logger.Debug("quit", "board", l.game.ID())
			return nil
		}

		cell, err := ParsePosition(line)
		if err != nil {
			l.logger.Debug("rejected position", "input", line, "error", err)
			fmt.Fprintln(l.out, MsgWrongPosition)
			continue
		}

		word := l.game.Word(cell.Row, cell.Col)
		current := l.game.ColorAt(cell.Row, cell.Col)
		fmt.Fprintf(l.out, "%s: %s\n", l.colors.Colorize(word, current, current != core.LabelWhite), current)

		line, ok, err = l.prompt(colourPrompt)
		if err != nil || !ok {
			return err
		}
		if !l.game.SetColor(cell.Row, cell.Col, line) {
			fmt.Fprintln(l.out, MsgUnknownColour)
			continue
		}
		l.logger.Debug("label set",
			"board", l.game.ID(),
			"cell", cell.String(),
			"word", word,
			"label", l.game.ColorAt(cell.Row, cell.Col).String(),
		)
	}
}

// prompt writes p and reads one line. ok is false at end of input.
// Lines have no length limit; an over-long line is just bad input.
func (l *Loop) prompt(p string) (line string, ok bool, err error) {
	fmt.Fprint(l.out, p)
	line, err = l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("console: read failed: %w", err)
	}
	if err != nil && line == "" {
		fmt.Fprintln(l.out)
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// IsQuit reports whether line asks to leave the loop.
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}

// ParsePosition parses a 1-based "row,col" pair into a board cell.
// Whitespace around either number is allowed.
func ParsePosition(s string) (core.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Cell{}, fmt.Errorf("%w: %q is not row,col", ErrWrongPosition, s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%w: bad row %q", ErrWrongPosition, parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%w: bad column %q", ErrWrongPosition, parts[1])
	}

	cell := core.NewCell(row-1, col-1)
	if !cell.Valid() {
		return core.Cell{}, fmt.Errorf("%w: %d,%d outside 1..%d", ErrWrongPosition, row, col, core.BoardSize)
	}
	return cell, nil
}
