package entity

import (
	"fmt"

	"led-snake/game/types"
)

// Snake owns the live chain inside a SegmentPool: head and tail indices,
// the segment count and the current heading. Every pool slot is either on
// this chain or on the pool's free-list.
type Snake struct {
	pool      *SegmentPool
	head      int
	tail      int
	size      int
	Direction types.Direction
}

func NewSnake(pool *SegmentPool) *Snake {
	return &Snake{pool: pool, head: Nil, tail: Nil}
}

// Reset returns every slot to the pool and starts a one-segment snake at
// start. The first acquired slot is slot 0.
func (s *Snake) Reset(start types.Point, heading types.Direction) error {
	s.pool.Reset()
	idx, err := s.pool.Acquire()
	if err != nil {
		return err
	}
	s.pool.At(idx).Pos = start
	s.head, s.tail, s.size = idx, idx, 1
	s.Direction = heading
	return nil
}

// Move links a new head segment at newHead. The tail is left in place;
// call RemoveTail to complete a plain move.
func (s *Snake) Move(newHead types.Point) error {
	idx, err := s.pool.Acquire()
	if err != nil {
		return fmt.Errorf("growing head to %v: %w", newHead, err)
	}
	seg := s.pool.At(idx)
	seg.Pos = newHead
	seg.Next = s.head
	seg.Prev = Nil
	if s.head != Nil {
		s.pool.At(s.head).Prev = idx
	} else {
		s.tail = idx
	}
	s.head = idx
	s.size++
	return nil
}

// RemoveTail releases the tail segment and returns the cell it vacated.
// A one-segment snake is never shortened.
func (s *Snake) RemoveTail() (types.Point, bool) {
	if s.size <= 1 {
		return types.Point{}, false
	}
	old := s.tail
	seg := s.pool.At(old)
	pos, prev := seg.Pos, seg.Prev
	s.pool.At(prev).Next = Nil
	s.tail = prev
	s.pool.Release(old)
	s.size--
	return pos, true
}

func (s *Snake) GetHead() types.Point {
	return s.pool.At(s.head).Pos
}

func (s *Snake) GetTail() types.Point {
	return s.pool.At(s.tail).Pos
}

// HeadIndex and TailIndex expose the pool slots at either end of the chain.
func (s *Snake) HeadIndex() int { return s.head }
func (s *Snake) TailIndex() int { return s.tail }

func (s *Snake) Len() int { return s.size }

// Walk visits segments from head to tail. It stops early when fn returns
// false, and after Cap() hops regardless.
func (s *Snake) Walk(fn func(idx int, seg *Segment) bool) {
	hops := 0
	for idx := s.head; idx != Nil && hops < s.pool.Cap(); idx = s.pool.At(idx).Next {
		if !fn(idx, s.pool.At(idx)) {
			return
		}
		hops++
	}
}

// Body returns segment positions ordered head to tail.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, 0, s.size)
	s.Walk(func(_ int, seg *Segment) bool {
		body = append(body, seg.Pos)
		return true
	})
	return body
}

// SetDirection updates the heading. With preventReversal set, a request to
// turn straight back into the neck keeps the current heading instead.
func (s *Snake) SetDirection(dir types.Direction, preventReversal bool) types.Direction {
	if preventReversal && s.size > 1 && dir == s.Direction.Opposite() {
		return s.Direction
	}
	s.Direction = dir
	return dir
}
