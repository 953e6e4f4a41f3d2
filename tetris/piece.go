package tetris

import "iter"

// Piece is the falling tetromino. X and Y locate the top-left corner of its
// bounding box on the board; Y is negative while the piece is still above the
// visible rows. Pieces are values and every transform returns a new one.
type Piece struct {
	X, Y     int
	Kind     ShapeKind
	Color    Color
	Rotation int
}

// Source supplies uniform random draws in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Spawn places a new piece of the given kind at the top-center of a grid.
// The column is floor((gridWidth - cols) / 2), so a piece wider than the grid
// starts left of column 0.
func Spawn(kind ShapeKind, gridWidth int) Piece {
	kind = normalizeKind(kind)
	return Piece{
		X:     floorDiv(gridWidth-shapes[kind].Cols(), 2),
		Y:     -1,
		Kind:  kind,
		Color: ColorFor(kind),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Draw spawns a piece whose kind is chosen uniformly from the catalog.
func Draw(src Source, gridWidth int) Piece {
	return Spawn(ShapeKind(src.IntN(ShapeCount)), gridWidth)
}

// Cells returns the base shape rotated clockwise Rotation times.
func (p Piece) Cells() Shape {
	return shapes[normalizeKind(p.Kind)].RotateN(p.Rotation)
}

func (p Piece) Translate(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

func (p Piece) WithRotation(rotation int) Piece {
	p.Rotation = normalizeRotation(rotation)
	return p
}

// Blocks yields the absolute board coordinates of every filled cell.
func (p Piece) Blocks() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range p.Cells() {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(p.X+c, p.Y+r) {
					return
				}
			}
		}
	}
}
