package ai

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"led-snake/game"
	"led-snake/game/types"
)

// Pilot plays the game through the input register. The control loop hands
// it a snapshot after every step; the pilot learns from the transition on
// its own goroutine and publishes its next choice for the input sampler.
type Pilot struct {
	agent  *QLearning
	states chan game.Snapshot

	decision atomic.Int32
	ready    atomic.Bool

	wg        sync.WaitGroup
	session   string
	last      game.Snapshot
	lastState State
	hasLast   bool
}

func NewPilot(agent *QLearning) *Pilot {
	return &Pilot{
		agent:  agent,
		states: make(chan game.Snapshot, 1),
	}
}

// Observe queues a snapshot without blocking. If the pilot has not caught
// up, the older queued snapshot is dropped.
func (p *Pilot) Observe(s game.Snapshot) {
	select {
	case p.states <- s:
		return
	default:
	}
	select {
	case <-p.states:
	default:
	}
	select {
	case p.states <- s:
	default:
	}
}

// Start runs the learning loop until ctx is cancelled.
func (p *Pilot) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-p.states:
				p.handle(s)
			}
		}
	}()
}

// Wait blocks until the learning loop has exited.
func (p *Pilot) Wait() {
	p.wg.Wait()
}

// Sample implements input.Source.
func (p *Pilot) Sample() (types.Direction, bool) {
	if !p.ready.Load() {
		return types.Up, false
	}
	return types.Direction(p.decision.Load()), true
}

// Agent returns the underlying learner.
func (p *Pilot) Agent() *QLearning {
	return p.agent
}

func (p *Pilot) handle(s game.Snapshot) {
	if len(s.Body) == 0 {
		return
	}
	if s.Session != p.session {
		if p.session != "" {
			p.agent.GamesPlayed++
		}
		p.session = s.Session
		p.hasLast = false
	}

	state := NewState(s)
	if p.hasLast && (s.Steps != p.last.Steps || s.Status == types.Halted) {
		// The heading in the new snapshot is the direction the engine
		// actually used, whoever chose it.
		reward := Reward(p.last, s)
		p.agent.Update(p.lastState, s.Heading, reward, state, s.Status == types.Halted)
	}

	if s.Status == types.Halted {
		if p.hasLast {
			log.Printf("autopilot: game %s over after %d steps, total reward %.1f", s.Session, s.Steps, p.agent.TotalReward)
		}
		p.hasLast = false
		p.ready.Store(false)
		return
	}

	action := p.agent.GetAction(state)
	p.decision.Store(int32(action))
	p.ready.Store(true)
	p.last, p.lastState, p.hasLast = s, state, true
}
