package input

import (
	"testing"

	"led-snake/game/types"
)

func TestResolve(t *testing.T) {
	j := NewJoystick(nil, 0)
	const mid = ADCMax / 2

	tests := []struct {
		name string
		x, y uint16
		dir  types.Direction
		ok   bool
	}{
		{"rest", mid, mid, types.Up, false},
		{"up", mid, 4090, types.Up, true},
		{"up threshold", mid, ADCMax - DefaultErrorMargin, types.Up, true},
		{"just short of up", mid, ADCMax - DefaultErrorMargin - 1, types.Up, false},
		{"down", mid, 0, types.Down, true},
		{"down threshold", mid, DefaultErrorMargin, types.Down, true},
		{"right", 4095, mid, types.Right, true},
		{"left", 10, mid, types.Left, true},
		{"vertical wins", 4095, 4095, types.Up, true},
		{"down before horizontal", 0, 0, types.Down, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := j.Resolve(tt.x, tt.y)
			if ok != tt.ok || (ok && dir != tt.dir) {
				t.Errorf("Resolve(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, dir, ok, tt.dir, tt.ok)
			}
		})
	}
}

func TestJoystickSample(t *testing.T) {
	j := NewJoystick(AnalogFunc(func() (uint16, uint16) { return 0, ADCMax / 2 }), 100)
	if j.ErrorMargin != 100 {
		t.Errorf("Expected margin 100, got %d", j.ErrorMargin)
	}
	dir, ok := j.Sample()
	if !ok || dir != types.Left {
		t.Errorf("Expected Left, got %v %v", dir, ok)
	}
}

func TestAxisToADC(t *testing.T) {
	tests := []struct {
		v    float32
		want uint16
	}{
		{-1, 0},
		{1, ADCMax - 1},
		{-3, 0},
		{3, ADCMax - 1},
		{0, 2047},
	}
	for _, tt := range tests {
		if got := AxisToADC(tt.v); got != tt.want {
			t.Errorf("AxisToADC(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}

	j := NewJoystick(nil, 0)
	if _, ok := j.Resolve(AxisToADC(0), AxisToADC(0)); ok {
		t.Error("A centred gamepad must not steer")
	}
	if dir, ok := j.Resolve(AxisToADC(0), AxisToADC(1)); !ok || dir != types.Up {
		t.Errorf("Full up deflection resolved to %v %v", dir, ok)
	}
}
