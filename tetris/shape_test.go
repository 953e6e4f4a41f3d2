package tetris_test

import (
	"testing"

	"github.com/plus3/pixeltetris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotateFourTimesReturnsOriginal(t *testing.T) {
	for kind := range tetris.ShapeKind(tetris.ShapeCount) {
		t.Run(kind.String(), func(t *testing.T) {
			base := tetris.ShapeMatrix(kind)

			rotated := base
			for range 4 {
				rotated = rotated.Rotate()
			}

			assert.True(t, base.Equal(rotated))
			assert.True(t, base.Equal(base.RotateN(4)))
			assert.True(t, base.Equal(base.RotateN(0)))
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	j := tetris.ShapeMatrix(tetris.J)
	want := tetris.Shape{
		{true, true},
		{true, false},
		{true, false},
	}
	assert.Equal(t, want, j.Rotate())

	i := tetris.ShapeMatrix(tetris.I).Rotate()
	assert.Equal(t, 4, i.Rows())
	assert.Equal(t, 1, i.Cols())
}

func TestRotateNegative(t *testing.T) {
	s := tetris.ShapeMatrix(tetris.S)
	assert.Equal(t, s.RotateN(3), s.RotateN(-1))
	assert.Equal(t, s.RotateN(1), s.RotateN(5))
}

func TestRotateDoesNotMutate(t *testing.T) {
	l := tetris.ShapeMatrix(tetris.L)
	before := l.Clone()
	_ = l.Rotate()
	assert.Equal(t, before, l)
}

func TestShapeCatalog(t *testing.T) {
	tests := []struct {
		kind tetris.ShapeKind
		rows int
		cols int
	}{
		{tetris.I, 1, 4},
		{tetris.J, 2, 3},
		{tetris.L, 2, 3},
		{tetris.O, 2, 2},
		{tetris.S, 2, 3},
		{tetris.T, 2, 3},
		{tetris.Z, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			shape := tetris.ShapeMatrix(tt.kind)
			assert.Equal(t, tt.rows, shape.Rows())
			assert.Equal(t, tt.cols, shape.Cols())
			assert.Equal(t, 4, shape.Filled())
		})
	}
}

func TestShapeMatrixReturnsCopy(t *testing.T) {
	shape := tetris.ShapeMatrix(tetris.T)
	shape[0][0] = true

	assert.False(t, tetris.ShapeMatrix(tetris.T)[0][0])
}

func TestColorFor(t *testing.T) {
	seen := make(map[tetris.Color]bool)
	for kind := range tetris.ShapeKind(tetris.ShapeCount) {
		c := tetris.ColorFor(kind)
		assert.False(t, seen[c], "color reused for %v", kind)
		seen[c] = true

		_, _, _, a := c.RGBA()
		assert.Equal(t, uint32(0xFFFF), a)
	}
}
