package manager

import (
	"led-snake/game/entity"
	"led-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         *entity.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
	respawn      bool
	seed         uint64
}

// NewFoodManager places fruit on grid. When respawn is false fruit only
// comes from Seed.
func NewFoodManager(grid *entity.Grid, collisionMgr *CollisionManager, respawn bool, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
		respawn:      respawn,
		seed:         seed,
	}
}

// Seed places the initial fruit and rewinds the spawn generator so every
// session replays the same sequence.
func (fm *FoodManager) Seed(fruits []types.Point) {
	fm.rng.Seed(fm.seed)
	for _, f := range fruits {
		if fm.collisionMgr.ValidateSpawnPosition(f) {
			fm.grid.Put(f, types.Fruit)
		}
	}
}

// Update runs after every committed move.
func (fm *FoodManager) Update(outcome types.Outcome) (types.Point, bool) {
	if !fm.respawn || outcome != types.Grew {
		return types.Point{}, false
	}
	food, ok := fm.GenerateFood()
	if ok {
		fm.grid.Put(food, types.Fruit)
	}
	return food, ok
}

// GenerateFood picks a uniformly random empty cell. It reports false when
// the board has no empty cell left.
func (fm *FoodManager) GenerateFood() (types.Point, bool) {
	empty := fm.grid.Count(types.Empty)
	if empty == 0 {
		return types.Point{}, false
	}
	k := fm.rng.Intn(empty)
	var food types.Point
	found := false
	fm.grid.Each(func(p types.Point, c types.Cell) {
		if found || c != types.Empty {
			return
		}
		if k == 0 {
			food, found = p, true
			return
		}
		k--
	})
	return food, found
}

// Remaining returns the number of fruit cells on the board.
func (fm *FoodManager) Remaining() int {
	return fm.grid.Count(types.Fruit)
}
