package tetris_test

import "github.com/plus3/pixeltetris/tetris"

// sequence is a Source that cycles through fixed shape kinds.
type sequence struct {
	kinds []tetris.ShapeKind
	next  int
}

func newSequence(kinds ...tetris.ShapeKind) *sequence {
	return &sequence{kinds: kinds}
}

func (s *sequence) IntN(n int) int {
	kind := int(s.kinds[s.next%len(s.kinds)])
	s.next++
	return kind % n
}

// fillRow locks every cell of row y except the given columns.
func fillRow(b tetris.Board, y int, except ...int) tetris.Board {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range b.Width() {
		if !skip[x] {
			b = b.Place(x, y, tetris.ColorFor(tetris.S))
		}
	}
	return b
}

// vertical returns an I piece stood on end with its top cell at (x, y).
func vertical(x, y int) tetris.Piece {
	return tetris.Piece{X: x, Y: y, Kind: tetris.I, Color: tetris.ColorFor(tetris.I), Rotation: 1}
}
