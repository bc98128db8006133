package entity

import (
	"errors"

	"led-snake/game/types"
)

// Nil marks the absence of a segment link.
const Nil = -1

var ErrPoolExhausted = errors.New("segment pool exhausted")

// Segment is one unit of snake body. While a slot sits on the free-list
// Next is the free-list link and Prev is unused.
type Segment struct {
	Pos  types.Point
	Next int // toward the tail
	Prev int // toward the head
}

// SegmentPool is a fixed-capacity arena of segments with an embedded
// singly linked free-list. Acquire and Release never allocate.
type SegmentPool struct {
	slots    []Segment
	freeHead int
	free     int
}

// NewSegmentPool allocates capacity slots, all of them free.
func NewSegmentPool(capacity int) *SegmentPool {
	p := &SegmentPool{slots: make([]Segment, capacity)}
	p.Reset()
	return p
}

// Reset chains every slot into the free-list in index order.
func (p *SegmentPool) Reset() {
	for i := range p.slots {
		p.slots[i] = Segment{Next: i + 1, Prev: Nil}
	}
	if n := len(p.slots); n > 0 {
		p.slots[n-1].Next = Nil
		p.freeHead = 0
	} else {
		p.freeHead = Nil
	}
	p.free = len(p.slots)
}

// Acquire pops the head of the free-list.
func (p *SegmentPool) Acquire() (int, error) {
	idx := p.freeHead
	if idx == Nil {
		return Nil, ErrPoolExhausted
	}
	p.freeHead = p.slots[idx].Next
	p.slots[idx] = Segment{Next: Nil, Prev: Nil}
	p.free--
	return idx, nil
}

// Release pushes idx back onto the free-list head.
func (p *SegmentPool) Release(idx int) {
	p.slots[idx] = Segment{Next: p.freeHead, Prev: Nil}
	p.freeHead = idx
	p.free++
}

// At returns the slot for idx. The pointer stays valid for the pool's lifetime.
func (p *SegmentPool) At(idx int) *Segment {
	return &p.slots[idx]
}

func (p *SegmentPool) Cap() int { return len(p.slots) }

// Free returns the number of slots on the free-list.
func (p *SegmentPool) Free() int { return p.free }

// FreeList walks the free-list and returns its slot indices.
// It stops after Cap() hops so a corrupted chain cannot loop forever.
func (p *SegmentPool) FreeList() []int {
	out := make([]int, 0, p.free)
	for idx := p.freeHead; idx != Nil && len(out) <= len(p.slots); idx = p.slots[idx].Next {
		out = append(out, idx)
	}
	return out
}
