package ai

import (
	"math"
	"sync"

	"led-snake/config"
	"led-snake/game"
	"led-snake/game/types"

	"golang.org/x/exp/rand"
)

// State is what the agent sees around the head: the sign of the offset
// to the nearest fruit and whether each direction is immediately blocked.
type State struct {
	FruitDir [2]int  // row, col sign
	Dangers  [4]bool // indexed like types.Directions
}

// QTable holds one value per direction, indexed like types.Directions.
type QTable map[State]*[4]float64

// Rewards for a single transition.
const (
	rewardGrew    = 1.0
	rewardBlocked = -1.0
	rewardCloser  = 0.5
	rewardFarther = -0.3
)

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	mutex sync.RWMutex
	rng   *rand.Rand
}

func NewQLearning(cfg config.AutopilotConfig) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: cfg.LearningRate,
		Discount:     cfg.Discount,
		Epsilon:      cfg.Epsilon,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
	}
}

// NewState derives the agent's view from a snapshot.
func NewState(s game.Snapshot) State {
	head := s.Head()
	var st State
	if fruit, ok := nearestFruit(s, head); ok {
		st.FruitDir = [2]int{sign(fruit.Row - head.Row), sign(fruit.Col - head.Col)}
	}
	for i, dir := range types.Directions {
		next := head.Add(dir.Delta())
		st.Dangers[i] = !s.InBounds(next) || s.At(next) == types.SnakeBody
	}
	return st
}

// GetAction picks a direction epsilon-greedily.
func (q *QLearning) GetAction(state State) types.Direction {
	q.mutex.Lock()
	explore := q.rng.Float64() < q.Epsilon
	pick := q.rng.Intn(len(types.Directions))
	q.mutex.Unlock()

	if explore {
		return types.Directions[pick]
	}
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) types.Direction {
	values := q.values(state)

	q.mutex.RLock()
	defer q.mutex.RUnlock()
	best := types.Up
	bestValue := math.Inf(-1)
	for i, v := range values {
		if v > bestValue {
			bestValue = v
			best = types.Directions[i]
		}
	}
	return best
}

// values returns the row for state, creating it on first sight. Known
// dangers start at the blocked reward so an untrained agent avoids walls.
func (q *QLearning) values(state State) *[4]float64 {
	q.mutex.RLock()
	row, ok := q.QTable[state]
	q.mutex.RUnlock()
	if ok {
		return row
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()
	if row, ok := q.QTable[state]; ok {
		return row
	}
	row = &[4]float64{}
	for i, danger := range state.Dangers {
		if danger {
			row[i] = rewardBlocked
		}
	}
	q.QTable[state] = row
	return row
}

// Reward scores the transition from prev to next.
func Reward(prev, next game.Snapshot) float64 {
	switch {
	case next.Status == types.Halted:
		return rewardBlocked
	case next.Outcome == types.Grew:
		return rewardGrew
	}
	before, okBefore := fruitDistance(prev)
	after, okAfter := fruitDistance(next)
	if !okBefore || !okAfter {
		return 0
	}
	switch {
	case after < before:
		return rewardCloser
	case after > before:
		return rewardFarther
	}
	return 0
}

// Update applies the Q-learning rule. Terminal transitions have no future value.
func (q *QLearning) Update(state State, action types.Direction, reward float64, nextState State, terminal bool) {
	row := q.values(state)
	maxNextQ := 0.0
	if !terminal {
		next := q.values(nextState)
		q.mutex.RLock()
		maxNextQ = math.Inf(-1)
		for _, v := range next {
			maxNextQ = math.Max(maxNextQ, v)
		}
		q.mutex.RUnlock()
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()
	currentQ := row[action]
	row[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.TotalReward += reward
}

func nearestFruit(s game.Snapshot, from types.Point) (types.Point, bool) {
	best, bestDist := types.Point{}, -1
	for _, f := range s.Fruits() {
		if d := manhattan(from, f); bestDist < 0 || d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, bestDist >= 0
}

func fruitDistance(s game.Snapshot) (int, bool) {
	head := s.Head()
	f, ok := nearestFruit(s, head)
	if !ok {
		return 0, false
	}
	return manhattan(head, f), true
}

func manhattan(a, b types.Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
