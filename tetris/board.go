package tetris

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	GridWidth  = 10
	GridHeight = 20
)

// Board holds the locked cells of a width×height grid. The active piece is
// never part of it. A Board is never modified after it is returned; Lock,
// Place and ClearLines build new boards.
//
// The zero Board is a valid 0×0 board: it holds no cells and no piece fits
// on it. Use NewBoard for a playable grid.
type Board struct {
	width  int
	height int
	cells  *intmap.Map[Cell, Color]
}

// NewBoard creates an empty board
func NewBoard(width, height int) Board {
	return Board{
		width:  width,
		height: height,
		cells:  intmap.New[Cell, Color](width * height),
	}
}

func (b Board) Width() int  { return b.width }
func (b Board) Height() int { return b.height }

// Len returns the number of locked cells.
func (b Board) Len() int {
	return b.cells.Len()
}

func (b Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Has reports whether (x, y) holds a locked cell.
func (b Board) Has(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cells.Has(NewCell(x, y))
}

// At returns the color locked at (x, y).
func (b Board) At(x, y int) (Color, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.cells.Get(NewCell(x, y))
}

// Cells iterates over locked cells in no particular order.
func (b Board) Cells() iter.Seq2[Cell, Color] {
	return b.cells.All()
}

// Place returns a copy of the board with (x, y) set to color.
// Coordinates outside the grid are ignored.
func (b Board) Place(x, y int, color Color) Board {
	next := b.clone()
	if next.inBounds(x, y) {
		next.cells.Put(NewCell(x, y), color)
	}
	return next
}

// Valid reports whether every filled cell of p is inside the side and bottom
// walls and off locked cells. Cells above the top row never collide.
func (b Board) Valid(p Piece) bool {
	for x, y := range p.Blocks() {
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		if y >= 0 && b.cells.Has(NewCell(x, y)) {
			return false
		}
	}
	return true
}

// Lock returns a new board with the piece's cells locked in its color.
// Cells still above the top row are dropped.
func (b Board) Lock(p Piece) Board {
	next := b.clone()
	for x, y := range p.Blocks() {
		if next.inBounds(x, y) {
			next.cells.Put(NewCell(x, y), p.Color)
		}
	}
	return next
}

// FullRows returns the indices of completely occupied rows, top to bottom.
func (b Board) FullRows() []int {
	counts := make([]int, b.height)
	for cell := range b.cells.Keys() {
		counts[cell.Y()]++
	}

	var full []int
	for y, n := range counts {
		if n == b.width {
			full = append(full, y)
		}
	}
	return full
}

// ClearLines removes every full row and drops the cells above each cleared
// row by the number of cleared rows beneath them. Rows below the lowest
// cleared row stay put. It returns the board unchanged when nothing clears.
func (b Board) ClearLines() (Board, int) {
	full := b.FullRows()
	if len(full) == 0 {
		return b, 0
	}

	isFull := make([]bool, b.height)
	for _, y := range full {
		isFull[y] = true
	}

	// below[y] counts cleared rows with an index greater than y
	below := make([]int, b.height)
	count := 0
	for y := b.height - 1; y >= 0; y-- {
		below[y] = count
		if isFull[y] {
			count++
		}
	}

	next := Board{
		width:  b.width,
		height: b.height,
		cells:  intmap.New[Cell, Color](b.width * b.height),
	}
	for cell, color := range b.cells.All() {
		y := cell.Y()
		if isFull[y] {
			continue
		}
		next.cells.Put(NewCell(cell.X(), y+below[y]), color)
	}

	return next, len(full)
}

func (b Board) clone() Board {
	next := Board{
		width:  b.width,
		height: b.height,
		cells:  intmap.New[Cell, Color](b.width * b.height),
	}
	for cell, color := range b.cells.All() {
		next.cells.Put(cell, color)
	}
	return next
}
