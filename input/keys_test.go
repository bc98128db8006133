package input

import (
	"testing"

	"led-snake/game/types"
)

func TestParseRune(t *testing.T) {
	tests := []struct {
		r    rune
		want KeyInput
	}{
		{'w', KeyInput{Steer, types.Up}},
		{'S', KeyInput{Steer, types.Down}},
		{'a', KeyInput{Steer, types.Left}},
		{'D', KeyInput{Steer, types.Right}},
		{'q', KeyInput{Action: Quit}},
		{'R', KeyInput{Action: Restart}},
		{'x', KeyInput{}},
	}
	for _, tt := range tests {
		if got := ParseRune(tt.r); got != tt.want {
			t.Errorf("ParseRune(%q) = %+v, want %+v", tt.r, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	reg := NewRegister(types.Up)
	if got := ParseRune('d').Apply(reg); got != Steer || reg.Poll() != types.Right {
		t.Errorf("Steer key returned %v, register %v", got, reg.Poll())
	}
	if got := ParseRune('q').Apply(reg); got != Quit || reg.Poll() != types.Right {
		t.Errorf("Quit key returned %v, register %v", got, reg.Poll())
	}
}
