package entity

import "led-snake/game/types"

// Grid is the authoritative occupancy store. Callers check bounds
// before Get/Set; out-of-range coordinates panic like a slice index.
type Grid struct {
	rows  int
	cols  int
	cells []types.Cell
}

func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]types.Cell, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells on the board.
func (g *Grid) Size() int { return len(g.cells) }

func (g *Grid) Get(row, col int) types.Cell {
	return g.cells[row*g.cols+col]
}

func (g *Grid) Set(row, col int, c types.Cell) {
	g.cells[row*g.cols+col] = c
}

func (g *Grid) At(p types.Point) types.Cell {
	return g.Get(p.Row, p.Col)
}

func (g *Grid) Put(p types.Point, c types.Cell) {
	g.Set(p.Row, p.Col, c)
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p types.Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Clear marks every cell Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = types.Empty
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c types.Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Each visits cells in row-major order.
func (g *Grid) Each(fn func(p types.Point, c types.Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(types.Point{Row: row, Col: col}, g.cells[row*g.cols+col])
		}
	}
}

// CopyTo writes the cells into dst, which must hold Size() cells.
func (g *Grid) CopyTo(dst []types.Cell) {
	copy(dst, g.cells)
}
