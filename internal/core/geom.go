// Package core provides the fundamental board types shared by the game,
// the renderers and the command loop. It has no external dependencies.
package core

import "fmt"

// BoardSize is the number of rows and columns on the board.
const BoardSize = 5

// CellCount is the total number of cells on the board.
const CellCount = BoardSize * BoardSize

// Cell is a zero-based (row, col) position on the board.
type Cell struct {
	Row, Col int
}

// NewCell creates a cell at the given zero-based position.
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Index returns the position of the cell in the board slices.
// Cells are stored column-major: row + BoardSize*col.
func (c Cell) Index() int {
	return c.Row + BoardSize*c.Col
}

// Move returns the cell shifted by (dRow, dCol), clamped to the board.
func (c Cell) Move(dRow, dCol int) Cell {
	return Cell{
		Row: Clamp(c.Row+dRow, 0, BoardSize-1),
		Col: Clamp(c.Col+dCol, 0, BoardSize-1),
	}
}

// String formats the cell 1-based, the way users type it.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row+1, c.Col+1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
