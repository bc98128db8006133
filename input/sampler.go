package input

import (
	"context"
	"sync"
	"time"

	"led-snake/game/types"
)

// Source produces a direction when it has one.
type Source interface {
	Sample() (types.Direction, bool)
}

// Sampler polls a Source on a fixed period and stores every resolved
// direction in a Register, the way a hardware timer interrupt would.
type Sampler struct {
	source   Source
	register *Register
	interval time.Duration

	wg      sync.WaitGroup
	mutex   sync.Mutex
	running bool
	cancel  context.CancelFunc
	samples int
}

func NewSampler(source Source, register *Register, interval time.Duration) *Sampler {
	return &Sampler{
		source:   source,
		register: register,
		interval: interval,
	}
}

// Start launches the polling goroutine. It is a no-op if already running.
func (s *Sampler) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.running {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop cancels the goroutine and waits for it to exit.
func (s *Sampler) Stop() {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return
	}
	s.running = false
	s.cancel()
	s.mutex.Unlock()

	s.wg.Wait()
}

// Samples returns how many directions have been stored so far.
func (s *Sampler) Samples() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.samples
}

func (s *Sampler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dir, ok := s.source.Sample(); ok {
				s.register.Store(dir)
				s.mutex.Lock()
				s.samples++
				s.mutex.Unlock()
			}
		}
	}
}
