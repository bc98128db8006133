package game

import (
	"fmt"

	"led-snake/config"
	"led-snake/game/entity"
	"led-snake/game/manager"
	"led-snake/game/types"

	"github.com/google/uuid"
)

// Game is the full engine state for one board: occupancy grid, segment
// pool, live snake and lifecycle. All mutation happens inside Step.
type Game struct {
	UUID  string
	Board config.BoardConfig

	grid  *entity.Grid
	pool  *entity.SegmentPool
	snake *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	suppressReversal bool
}

// New builds a game from cfg and initializes it.
func New(cfg *config.Config) (*Game, error) {
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}

	grid := entity.NewGrid(cfg.Board.Rows, cfg.Board.Cols)
	pool := entity.NewSegmentPool(cfg.Board.Size())
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Board:            cfg.Board,
		grid:             grid,
		pool:             pool,
		snake:            entity.NewSnake(pool),
		collisionMgr:     collisionMgr,
		foodMgr:          manager.NewFoodManager(grid, collisionMgr, cfg.Fruit.Respawn, cfg.Fruit.Seed),
		stateMgr:         manager.NewStateManager(),
		suppressReversal: cfg.Engine.SuppressReversal,
	}
	if err := g.Init(); err != nil {
		return nil, err
	}
	return g, nil
}

// Init resets the board: empty grid, one-segment snake at the start cell,
// the configured fruit, and every other pool slot on the free-list.
func (g *Game) Init() error {
	g.grid.Clear()
	if err := g.snake.Reset(g.Board.Start, g.Board.Heading); err != nil {
		return fmt.Errorf("placing snake: %w", err)
	}
	g.grid.Put(g.Board.Start, types.SnakeBody)
	g.foodMgr.Seed(g.Board.Fruits)
	g.stateMgr.Reset()
	g.UUID = uuid.New().String()
	return nil
}

// Step moves the snake one cell in dir. An invalid dir keeps the current
// heading. Blocked leaves the grid and pool untouched and halts the game;
// once halted every call returns Blocked.
func (g *Game) Step(dir types.Direction) types.Outcome {
	if g.stateMgr.Halted() {
		return types.Blocked
	}

	if !dir.Valid() {
		dir = g.snake.Direction
	}
	dir = g.snake.SetDirection(dir, g.suppressReversal)
	newHead := g.snake.GetHead().Add(dir.Delta())

	outcome, collision := g.collisionMgr.Evaluate(newHead)
	if outcome == types.Blocked {
		g.stateMgr.Update(outcome, collision)
		return outcome
	}

	if err := g.snake.Move(newHead); err != nil {
		// Fruit only ever sits on empty cells, so growth cannot outrun the pool.
		panic(fmt.Sprintf("snake engine invariant violated: %v", err))
	}
	g.grid.Put(newHead, types.SnakeBody)

	if outcome == types.Moved {
		if vacated, ok := g.snake.RemoveTail(); ok {
			g.grid.Put(vacated, types.Empty)
		}
	}

	g.foodMgr.Update(outcome)
	g.stateMgr.Update(outcome, types.NoCollision)
	return outcome
}

// Grid exposes the occupancy model for rendering. Callers must not mutate it.
func (g *Game) Grid() *entity.Grid { return g.grid }

func (g *Game) GetSnake() *entity.Snake { return g.snake }

func (g *Game) Head() types.Point { return g.snake.GetHead() }

func (g *Game) Tail() types.Point { return g.snake.GetTail() }

func (g *Game) Size() int { return g.snake.Len() }

func (g *Game) Heading() types.Direction { return g.snake.Direction }

// Body returns snake positions from head to tail.
func (g *Game) Body() []types.Point { return g.snake.Body() }

func (g *Game) Status() types.Status { return g.stateMgr.Status() }

// Steps counts committed moves since Init.
func (g *Game) Steps() int { return g.stateMgr.Steps() }

// LastCollision reports why the last Blocked step was rejected.
func (g *Game) LastCollision() types.CollisionType { return g.stateMgr.LastCollision() }

// FreeCount is the number of pool slots on the free-list.
func (g *Game) FreeCount() int { return g.pool.Free() }

// FruitCount is the number of fruit cells on the board.
func (g *Game) FruitCount() int { return g.foodMgr.Remaining() }
