package game

import (
	"fmt"

	"led-snake/game/entity"
	"led-snake/game/types"
)

// Verify checks the structural invariants that must hold between steps:
// the live chain runs head to tail over exactly Size distinct in-bounds
// cells, those cells and no others are SnakeBody, and the live chain plus
// the free-list cover every pool slot exactly once.
func (g *Game) Verify() error {
	size := g.snake.Len()
	if size < 1 {
		return fmt.Errorf("snake size %d, want at least 1", size)
	}

	owner := make([]int, g.pool.Cap()) // 0 unseen, 1 live, 2 free
	seen := make(map[types.Point]bool, size)
	visited, last := 0, entity.Nil
	prev := entity.Nil
	var walkErr error
	g.snake.Walk(func(idx int, seg *entity.Segment) bool {
		switch {
		case owner[idx] != 0:
			walkErr = fmt.Errorf("slot %d visited twice in live chain", idx)
		case seg.Prev != prev:
			walkErr = fmt.Errorf("slot %d back link %d, want %d", idx, seg.Prev, prev)
		case !g.grid.InBounds(seg.Pos):
			walkErr = fmt.Errorf("segment %d at %v is off the board", idx, seg.Pos)
		case seen[seg.Pos]:
			walkErr = fmt.Errorf("two segments share %v", seg.Pos)
		case g.grid.At(seg.Pos) != types.SnakeBody:
			walkErr = fmt.Errorf("segment %d at %v sits on %v cell", idx, seg.Pos, g.grid.At(seg.Pos))
		}
		if walkErr != nil {
			return false
		}
		owner[idx] = 1
		seen[seg.Pos] = true
		visited++
		prev, last = idx, idx
		return true
	})
	if walkErr != nil {
		return walkErr
	}
	if visited != size {
		return fmt.Errorf("live chain has %d segments, size is %d", visited, size)
	}
	if last != g.snake.TailIndex() {
		return fmt.Errorf("live chain ends at slot %d, tail is %d", last, g.snake.TailIndex())
	}
	if next := g.pool.At(last).Next; next != entity.Nil {
		return fmt.Errorf("tail slot %d links forward to %d", last, next)
	}
	if body := g.grid.Count(types.SnakeBody); body != size {
		return fmt.Errorf("grid has %d snake cells, size is %d", body, size)
	}

	free := g.pool.FreeList()
	for _, idx := range free {
		if owner[idx] != 0 {
			return fmt.Errorf("slot %d is on both chains or listed twice", idx)
		}
		owner[idx] = 2
	}
	if len(free) != g.pool.Free() {
		return fmt.Errorf("free-list has %d slots, pool counts %d", len(free), g.pool.Free())
	}
	if visited+len(free) != g.pool.Cap() {
		return fmt.Errorf("live %d + free %d != capacity %d", visited, len(free), g.pool.Cap())
	}
	return nil
}
