package tetris

// Cell encodes a board coordinate: y in the upper 16 bits, x in the lower 16 bits.
// Only non-negative coordinates are representable.
type Cell uint32

// NewCell packs x and y into a Cell
func NewCell(x, y int) Cell {
	return Cell(uint32(y)<<16 | uint32(x)&0xFFFF)
}

// X extracts the column from the cell
func (c Cell) X() int {
	return int(c & 0xFFFF)
}

// Y extracts the row from the cell
func (c Cell) Y() int {
	return int(c >> 16)
}
