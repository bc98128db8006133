package game

import "led-snake/game/types"

// Snapshot is a detached copy of the game state for observers that run
// outside the control loop, such as the autopilot and the step trace.
type Snapshot struct {
	Session   string
	Rows      int
	Cols      int
	Cells     []types.Cell // row-major
	Body      []types.Point
	Heading   types.Direction
	Status    types.Status
	Outcome   types.Outcome
	Collision types.CollisionType
	Steps     int
	Free      int
	Fruit     int
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	cells := make([]types.Cell, g.grid.Size())
	g.grid.CopyTo(cells)
	return Snapshot{
		Session:   g.UUID,
		Rows:      g.grid.Rows(),
		Cols:      g.grid.Cols(),
		Cells:     cells,
		Body:      g.snake.Body(),
		Heading:   g.snake.Direction,
		Status:    g.stateMgr.Status(),
		Outcome:   g.stateMgr.LastOutcome(),
		Collision: g.stateMgr.LastCollision(),
		Steps:     g.stateMgr.Steps(),
		Free:      g.pool.Free(),
		Fruit:     g.foodMgr.Remaining(),
	}
}

// Head returns the first body segment.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// InBounds reports whether p lies on the snapshot's board.
func (s Snapshot) InBounds(p types.Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// At returns the cell at p, which must be in bounds.
func (s Snapshot) At(p types.Point) types.Cell {
	return s.Cells[p.Row*s.Cols+p.Col]
}

// Fruits lists fruit cells in row-major order.
func (s Snapshot) Fruits() []types.Point {
	var out []types.Point
	for i, c := range s.Cells {
		if c == types.Fruit {
			out = append(out, types.Point{Row: i / s.Cols, Col: i % s.Cols})
		}
	}
	return out
}
