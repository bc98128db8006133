// Package input turns hardware and keyboard samples into a direction the
// control loop can read once per iteration.
package input

import (
	"sync/atomic"

	"led-snake/game/types"
)

// Register is a single-slot direction store shared between input
// producers and the control loop. The last write wins; readers take
// whatever value is current and need no further synchronization.
type Register struct {
	dir atomic.Int32
}

func NewRegister(initial types.Direction) *Register {
	r := &Register{}
	r.dir.Store(int32(initial))
	return r
}

// Store replaces the current direction. Invalid values are ignored.
func (r *Register) Store(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	r.dir.Store(int32(dir))
}

func (r *Register) Load() types.Direction {
	return types.Direction(r.dir.Load())
}

// Poll is the control loop's read of the latest resolved direction.
func (r *Register) Poll() types.Direction {
	return r.Load()
}
