package manager

import "led-snake/game/types"

// StateManager tracks the Alive/Halted lifecycle and per-session counters.
type StateManager struct {
	status        types.Status
	steps         int
	grown         int
	lastOutcome   types.Outcome
	lastCollision types.CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Reset() {
	*sm = StateManager{}
}

// Update records a step result. A Blocked outcome halts the session for good.
func (sm *StateManager) Update(outcome types.Outcome, collision types.CollisionType) {
	sm.lastOutcome = outcome
	sm.lastCollision = collision
	switch outcome {
	case types.Blocked:
		sm.status = types.Halted
	case types.Grew:
		sm.grown++
		sm.steps++
	default:
		sm.steps++
	}
}

func (sm *StateManager) Status() types.Status { return sm.status }

func (sm *StateManager) Halted() bool { return sm.status == types.Halted }

// Steps counts committed moves.
func (sm *StateManager) Steps() int { return sm.steps }

// Grown counts Grew outcomes.
func (sm *StateManager) Grown() int { return sm.grown }

func (sm *StateManager) LastOutcome() types.Outcome { return sm.lastOutcome }

func (sm *StateManager) LastCollision() types.CollisionType { return sm.lastCollision }
