// Package led maps the occupancy grid onto a serpentine-wired LED strip
// and defines the sink interface the display backends implement.
package led

import "led-snake/game/types"

// Color is one LED value. The matrix itself is wired GRB; the display
// sinks take care of channel order.
type Color struct {
	R, G, B uint8
}

// Off is the unlit LED.
var Off = Color{}

// screenGain brightens the dim LED intensities for a monitor.
const screenGain = 2.5

// OnScreen returns c scaled for display on a monitor, clamped per channel.
func (c Color) OnScreen() Color {
	return Color{R: boost(c.R), G: boost(c.G), B: boost(c.B)}
}

func boost(v uint8) uint8 {
	s := float32(v) * screenGain
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Pixel is a color addressed by its position on the LED strip.
type Pixel struct {
	Index int
	Color Color
}

// Palette maps cell states to LED colors.
type Palette struct {
	Snake Color
	Fruit Color
	Empty Color
}

// DefaultPalette keeps the LEDs dim: full-scale values are blinding on a
// 5x5 matrix.
func DefaultPalette() Palette {
	return Palette{
		Snake: Color{G: 100},
		Fruit: Color{R: 100},
		Empty: Off,
	}
}

// CellSource is the read side of the occupancy grid.
type CellSource interface {
	Rows() int
	Cols() int
	Get(row, col int) types.Cell
}

// Projector maps grid coordinates to strip indices for a serpentine
// wired matrix and cell states to colors. It keeps no state between calls.
type Projector struct {
	Rows             int
	Cols             int
	EvenRowsReversed bool
	Palette          Palette
}

func NewProjector(rows, cols int, evenRowsReversed bool, palette Palette) *Projector {
	return &Projector{
		Rows:             rows,
		Cols:             cols,
		EvenRowsReversed: evenRowsReversed,
		Palette:          palette,
	}
}

// Len is the number of LEDs on the strip.
func (p *Projector) Len() int { return p.Rows * p.Cols }

func (p *Projector) reversed(row int) bool {
	return (row%2 == 0) == p.EvenRowsReversed
}

// Index returns the strip position of a grid cell.
func (p *Projector) Index(row, col int) int {
	if p.reversed(row) {
		return row*p.Cols + (p.Cols - 1 - col)
	}
	return row*p.Cols + col
}

// Locate is the inverse of Index.
func (p *Projector) Locate(index int) (row, col int) {
	row = index / p.Cols
	col = index % p.Cols
	if p.reversed(row) {
		col = p.Cols - 1 - col
	}
	return row, col
}

// ColorOf returns the palette entry for a cell state.
func (p *Projector) ColorOf(c types.Cell) Color {
	switch c {
	case types.SnakeBody:
		return p.Palette.Snake
	case types.Fruit:
		return p.Palette.Fruit
	default:
		return p.Palette.Empty
	}
}

// Project returns one pixel per LED, ordered by strip index.
func (p *Projector) Project(src CellSource) []Pixel {
	return p.ProjectInto(make([]Pixel, p.Len()), src)
}

// ProjectInto fills dst, which must hold Len pixels, and returns it.
func (p *Projector) ProjectInto(dst []Pixel, src CellSource) []Pixel {
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			idx := p.Index(row, col)
			dst[idx] = Pixel{Index: idx, Color: p.ColorOf(src.Get(row, col))}
		}
	}
	return dst
}
