package game

import (
	"strings"

	"github.com/vovakirdan/codenames/internal/core"
	"github.com/vovakirdan/codenames/internal/palette"
)

// noCursor never matches a board cell.
var noCursor = core.Cell{Row: -1, Col: -1}

// Render draws the board as a boxed grid. Each word is right-aligned to the
// widest word on the board and coloured by its label; labelled cells are
// bold. A nil colorizer renders plain text.
func (g *Game) Render(c palette.Colorizer) string {
	return g.render(c, noCursor)
}

// RenderCursor is Render with cursor marked as |>word<. Column widths are
// the same as Render.
func (g *Game) RenderCursor(c palette.Colorizer, cursor core.Cell) string {
	return g.render(c, cursor)
}

func (g *Game) render(c palette.Colorizer, cursor core.Cell) string {
	if c == nil {
		c = palette.Plain{}
	}

	width := g.cellWidth()
	border := strings.Repeat("+"+strings.Repeat("-", width+2), core.BoardSize) + "+\n"
	blank := strings.Repeat("|"+strings.Repeat(" ", width+2), core.BoardSize) + "|\n"

	var sb strings.Builder
	sb.Grow((len(border) + 2*len(blank)) * (core.BoardSize + 1))

	sb.WriteString(border)
	for row := 0; row < core.BoardSize; row++ {
		sb.WriteString(blank)
		for col := 0; col < core.BoardSize; col++ {
			cell := core.NewCell(row, col)
			word := g.words[cell.Index()]
			label := g.labels[cell.Index()]

			left, right := " ", " "
			if cell == cursor {
				left, right = ">", "<"
			}

			sb.WriteString("|")
			sb.WriteString(left)
			sb.WriteString(strings.Repeat(" ", width-palette.Width(word)))
			sb.WriteString(c.Colorize(word, label, label != core.LabelWhite))
			sb.WriteString(right)
		}
		sb.WriteString("|\n")
		sb.WriteString(blank)
		sb.WriteString(border)
	}
	return sb.String()
}

// cellWidth is the display width of the widest word on the board.
func (g *Game) cellWidth() int {
	width := 0
	for _, w := range g.words {
		width = core.Max(width, palette.Width(w))
	}
	return width
}
