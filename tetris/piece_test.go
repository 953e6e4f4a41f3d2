package tetris_test

import (
	"fmt"
	"maps"
	"testing"

	"github.com/plus3/pixeltetris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSpawn(t *testing.T) {
	tests := []struct {
		kind  tetris.ShapeKind
		wantX int
	}{
		{tetris.I, 3},
		{tetris.J, 3},
		{tetris.O, 4},
		{tetris.Z, 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := tetris.Spawn(tt.kind, tetris.GridWidth)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, -1, p.Y)
			assert.Equal(t, 0, p.Rotation)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tetris.ColorFor(tt.kind), p.Color)
		})
	}
}

func TestDrawUsesSource(t *testing.T) {
	src := newSequence(tetris.T, tetris.O)

	assert.Equal(t, tetris.T, tetris.Draw(src, tetris.GridWidth).Kind)
	assert.Equal(t, tetris.O, tetris.Draw(src, tetris.GridWidth).Kind)
}

func TestPieceTransformsReturnNewValues(t *testing.T) {
	p := tetris.Spawn(tetris.L, tetris.GridWidth)

	moved := p.Translate(2, 3)
	assert.Equal(t, p.X+2, moved.X)
	assert.Equal(t, p.Y+3, moved.Y)
	assert.Equal(t, -1, p.Y, "original must not change")

	assert.Equal(t, 1, p.WithRotation(5).Rotation)
	assert.Equal(t, 3, p.WithRotation(-1).Rotation)
	assert.Equal(t, 0, p.Rotation)

	assert.Equal(t, p, p.Translate(0, 0))
	assert.NotEqual(t, p, moved)
}

func TestPieceCellsFollowRotation(t *testing.T) {
	p := tetris.Spawn(tetris.T, tetris.GridWidth)
	base := tetris.ShapeMatrix(tetris.T)

	for r := range 8 {
		assert.Equal(t, base.RotateN(r), p.WithRotation(r).Cells())
	}
}

func TestPieceBlocks(t *testing.T) {
	p := tetris.Piece{X: 3, Y: -1, Kind: tetris.T}

	got := make(map[[2]int]bool)
	for x, y := range p.Blocks() {
		got[[2]int{x, y}] = true
	}

	want := map[[2]int]bool{
		{4, -1}: true,
		{3, 0}:  true,
		{4, 0}:  true,
		{5, 0}:  true,
	}
	assert.True(t, maps.Equal(want, got), "got %v", got)
}

func TestSpawnFloorsColumnOnNarrowGrids(t *testing.T) {
	tests := []struct {
		kind  tetris.ShapeKind
		width int
		wantX int
	}{
		{tetris.I, 4, 0},
		{tetris.I, 3, -1},
		{tetris.I, 1, -2},
		{tetris.O, 1, -1},
		{tetris.T, 2, -1},
		{tetris.T, 4, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s on %d", tt.kind, tt.width), func(t *testing.T) {
			assert.Equal(t, tt.wantX, tetris.Spawn(tt.kind, tt.width).X)
		})
	}
}
