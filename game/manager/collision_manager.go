package manager

import (
	"led-snake/game/entity"
	"led-snake/game/types"
)

type CollisionManager struct {
	grid *entity.Grid
}

func NewCollisionManager(grid *entity.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a candidate head position against the current
// occupancy. The tail has not been vacated yet, so its cell still counts
// as body.
func (cm *CollisionManager) CheckCollision(pos types.Point) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.grid.At(pos) == types.SnakeBody {
		return types.SelfCollision
	}
	return types.NoCollision
}

// Evaluate resolves the outcome of moving the head to pos.
func (cm *CollisionManager) Evaluate(pos types.Point) (types.Outcome, types.CollisionType) {
	if collision := cm.CheckCollision(pos); collision != types.NoCollision {
		return types.Blocked, collision
	}
	if cm.IsFoodCollision(pos) {
		return types.Grew, types.NoCollision
	}
	return types.Moved, types.NoCollision
}

// isWallCollision checks if a position falls off the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsFoodCollision checks if a position holds fruit
func (cm *CollisionManager) IsFoodCollision(pos types.Point) bool {
	return cm.grid.InBounds(pos) && cm.grid.At(pos) == types.Fruit
}

// ValidateSpawnPosition checks if a position can receive new fruit
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point) bool {
	return cm.grid.InBounds(pos) && cm.grid.At(pos) == types.Empty
}
