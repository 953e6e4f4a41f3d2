package tetris

import "image/color"

// Color is an index into the piece palette. It satisfies color.Color so
// front ends can hand it to drawing APIs directly.
type Color uint8

var palette = [ShapeCount]color.RGBA{
	{163, 218, 212, 255},
	{168, 207, 255, 255},
	{255, 213, 153, 255},
	{255, 243, 193, 255},
	{191, 216, 184, 255},
	{211, 188, 230, 255},
	{242, 182, 182, 255},
}

// ColorFor returns the color assigned to a shape kind.
func ColorFor(kind ShapeKind) Color {
	return Color(normalizeKind(kind))
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Value().RGBA()
}

// Value returns the palette entry for c.
func (c Color) Value() color.RGBA {
	return palette[int(c)%len(palette)]
}
