package entity

import (
	"errors"
	"testing"
)

func TestPoolResetChainsAllSlots(t *testing.T) {
	p := NewSegmentPool(5)
	free := p.FreeList()
	if len(free) != 5 || p.Free() != 5 {
		t.Fatalf("Expected 5 free slots, got list %v count %d", free, p.Free())
	}
	for i, idx := range free {
		if idx != i {
			t.Errorf("Free-list position %d holds slot %d", i, idx)
		}
	}
}

func TestPoolAcquireRelease(t *testing.T) {
	p := NewSegmentPool(3)

	a, err := p.Acquire()
	if err != nil || a != 0 {
		t.Fatalf("First acquire = %d, %v; want slot 0", a, err)
	}
	b, _ := p.Acquire()
	if b != 1 {
		t.Errorf("Second acquire = %d, want 1", b)
	}
	if p.Free() != 1 {
		t.Errorf("Expected 1 free slot, got %d", p.Free())
	}

	p.Release(a)
	if got := p.FreeList(); len(got) != 2 || got[0] != a {
		t.Errorf("Released slot should head the free-list, got %v", got)
	}

	c, _ := p.Acquire()
	if c != a {
		t.Errorf("Expected LIFO reuse of slot %d, got %d", a, c)
	}
	if seg := p.At(c); seg.Next != Nil || seg.Prev != Nil {
		t.Errorf("Acquired slot should be unlinked, got %+v", *seg)
	}
}

func TestPoolExhausted(t *testing.T) {
	p := NewSegmentPool(2)
	for i := 0; i < 2; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
	}
	idx, err := p.Acquire()
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Expected ErrPoolExhausted, got %v", err)
	}
	if idx != Nil {
		t.Errorf("Expected Nil index on failure, got %d", idx)
	}
	if p.Free() != 0 {
		t.Errorf("Failed acquire changed free count to %d", p.Free())
	}
}
