package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/pixeltetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellEncoding(t *testing.T) {
	tests := []struct{ x, y int }{
		{0, 0},
		{9, 19},
		{0, 19},
		{9, 0},
		{0xFFFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("x=%d,y=%d", tt.x, tt.y), func(t *testing.T) {
			c := tetris.NewCell(tt.x, tt.y)
			assert.Equal(t, tt.x, c.X())
			assert.Equal(t, tt.y, c.Y())
		})
	}
}

func TestValidRejectsWalls(t *testing.T) {
	board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)
	o := tetris.Piece{Kind: tetris.O}

	tests := []struct {
		name  string
		x, y  int
		valid bool
	}{
		{"left wall", -1, 5, false},
		{"right wall", 9, 5, false},
		{"floor", 4, 19, false},
		{"bottom right corner", 8, 18, true},
		{"top left corner", 0, 0, true},
		{"above the board", 4, -2, true},
		{"far above but off the side", -1, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, board.Valid(o.Translate(tt.x, tt.y)))
		})
	}
}

func TestValidRejectsLockedCells(t *testing.T) {
	board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight).Place(5, 10, tetris.ColorFor(tetris.Z))
	o := tetris.Piece{Kind: tetris.O}

	assert.False(t, board.Valid(o.Translate(4, 9)))
	assert.False(t, board.Valid(o.Translate(5, 10)))
	assert.True(t, board.Valid(o.Translate(6, 10)))
	assert.True(t, board.Valid(o.Translate(4, 11)))
}

func TestValidIgnoresRowsAboveBoard(t *testing.T) {
	board := fillRow(tetris.NewBoard(tetris.GridWidth, tetris.GridHeight), 0, 3)

	// only the bottom cell of the column reaches row 0, at the free gap
	assert.True(t, board.Valid(vertical(3, -3)))
	assert.False(t, board.Valid(vertical(4, -3)))
}

func TestLockAddsPieceCells(t *testing.T) {
	empty := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)
	p := tetris.Piece{X: 2, Y: 17, Kind: tetris.J, Color: tetris.ColorFor(tetris.J)}

	locked := empty.Lock(p)

	assert.Equal(t, 0, empty.Len(), "lock must not modify the receiver")
	assert.Equal(t, 4, locked.Len())
	for x, y := range p.Blocks() {
		c, ok := locked.At(x, y)
		require.True(t, ok)
		assert.Equal(t, p.Color, c)
	}

	cleared, n := locked.ClearLines()
	assert.Equal(t, 0, n)
	assert.Equal(t, locked.Len(), cleared.Len())
}

func TestLockClipsRowsAboveBoard(t *testing.T) {
	board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)
	p := tetris.Spawn(tetris.T, tetris.GridWidth)

	locked := board.Lock(p)

	assert.Equal(t, 3, locked.Len())
	for cell := range locked.Cells() {
		assert.GreaterOrEqual(t, cell.Y(), 0)
	}
}

func TestClearLines(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		board := fillRow(tetris.NewBoard(tetris.GridWidth, tetris.GridHeight), 19, 0)

		next, n := board.ClearLines()
		assert.Equal(t, 0, n)
		assert.Equal(t, board, next)
	})

	t.Run("single row shifts cells above", func(t *testing.T) {
		board := fillRow(tetris.NewBoard(tetris.GridWidth, tetris.GridHeight), 19)
		board = board.Place(2, 18, tetris.ColorFor(tetris.L)).Place(7, 12, tetris.ColorFor(tetris.T))

		next, n := board.ClearLines()
		require.Equal(t, 1, n)
		assert.Equal(t, 2, next.Len())

		c, ok := next.At(2, 19)
		assert.True(t, ok)
		assert.Equal(t, tetris.ColorFor(tetris.L), c)
		assert.True(t, next.Has(7, 13))
		assert.False(t, next.Has(7, 12))
	})

	t.Run("rows below a cleared row stay put", func(t *testing.T) {
		board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)
		board = fillRow(board, 19, 0)
		board = fillRow(board, 18)
		board = fillRow(board, 16)
		board = board.Place(1, 17, tetris.ColorFor(tetris.I))
		board = board.Place(1, 15, tetris.ColorFor(tetris.O))

		next, n := board.ClearLines()
		require.Equal(t, 2, n)

		// row 19 has nothing cleared beneath it
		for x := 1; x < tetris.GridWidth; x++ {
			assert.True(t, next.Has(x, 19))
		}
		assert.False(t, next.Has(0, 19))
		// one cleared row (18) lies below row 17
		assert.True(t, next.Has(1, 18))
		// two cleared rows (16 and 18) lie below row 15
		assert.True(t, next.Has(1, 17))
		assert.Equal(t, tetris.GridWidth-1+2, next.Len())
	})

	t.Run("four rows", func(t *testing.T) {
		board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)
		for y := 16; y < 20; y++ {
			board = fillRow(board, y)
		}
		board = board.Place(4, 15, tetris.ColorFor(tetris.S))

		assert.Equal(t, []int{16, 17, 18, 19}, board.FullRows())

		next, n := board.ClearLines()
		assert.Equal(t, 4, n)
		assert.Equal(t, 1, next.Len())
		assert.True(t, next.Has(4, 19))
		assert.Empty(t, next.FullRows())
	})
}

func TestPlaceIgnoresOutOfRange(t *testing.T) {
	board := tetris.NewBoard(tetris.GridWidth, tetris.GridHeight)

	assert.Equal(t, 0, board.Place(-1, 0, 0).Len())
	assert.Equal(t, 0, board.Place(0, 20, 0).Len())
	assert.Equal(t, 0, board.Place(10, 0, 0).Len())
	assert.False(t, board.Has(-1, -1))
}

func TestZeroBoard(t *testing.T) {
	var b tetris.Board
	p := tetris.Spawn(tetris.O, 0)

	assert.Zero(t, b.Len())
	assert.False(t, b.Has(0, 0))
	assert.False(t, b.Valid(p), "no piece fits on a 0x0 board")
	assert.Empty(t, b.FullRows())

	locked := b.Lock(p)
	assert.Zero(t, locked.Len())

	cleared, n := locked.ClearLines()
	assert.Zero(t, n)
	assert.Zero(t, cleared.Len())
}
