package tetris

// Shape is a row-major matrix of filled cells.
type Shape [][]bool

// ShapeKind identifies one of the seven tetromino layouts.
type ShapeKind int

const (
	I ShapeKind = iota
	J
	L
	O
	S
	T
	Z
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

var shapeNames = [ShapeCount]string{"I", "J", "L", "O", "S", "T", "Z"}

var shapes = [ShapeCount]Shape{
	{ // I
		{true, true, true, true},
	},
	{ // J
		{true, false, false},
		{true, true, true},
	},
	{ // L
		{false, false, true},
		{true, true, true},
	},
	{ // O
		{true, true},
		{true, true},
	},
	{ // S
		{false, true, true},
		{true, true, false},
	},
	{ // T
		{false, true, false},
		{true, true, true},
	},
	{ // Z
		{true, true, false},
		{false, true, true},
	},
}

func (k ShapeKind) String() string {
	if k < 0 || k >= ShapeCount {
		return "?"
	}
	return shapeNames[k]
}

// ShapeMatrix returns a copy of the base layout for kind.
// Kinds outside the catalog wrap around.
func ShapeMatrix(kind ShapeKind) Shape {
	return shapes[normalizeKind(kind)].Clone()
}

func normalizeKind(kind ShapeKind) ShapeKind {
	k := kind % ShapeCount
	if k < 0 {
		k += ShapeCount
	}
	return k
}

func (s Shape) Rows() int {
	return len(s)
}

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Filled returns the number of filled cells.
func (s Shape) Filled() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Rotate returns a new matrix rotated 90 degrees clockwise.
// An R×C matrix becomes C×R with result[c][R-1-r] = s[r][c].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for c := range rotated {
		rotated[c] = make([]bool, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = s[r][c]
		}
	}

	return rotated
}

// RotateN applies n clockwise rotations. Negative n rotates counter-clockwise.
func (s Shape) RotateN(n int) Shape {
	n = normalizeRotation(n)
	if n == 0 {
		return s.Clone()
	}

	result := s
	for range n {
		result = result.Rotate()
	}
	return result
}

func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for i, row := range s {
		clone[i] = append([]bool(nil), row...)
	}
	return clone
}

func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func normalizeRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}
