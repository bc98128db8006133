package types

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{Row: 1}},
		{Down, Point{Row: -1}},
		{Left, Point{Col: -1}},
		{Right, Point{Col: 1}},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite of opposite of %v is %v", d, d.Opposite().Opposite())
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft then TurnRight from %v gave %v", d, d.TurnLeft().TurnRight())
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("Two right turns from %v gave %v, want %v", d, d.TurnRight().TurnRight(), d.Opposite())
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Point{}) {
			t.Errorf("%v and its opposite do not cancel: %v", d, sum)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), got)
		}
	}
	if _, err := ParseDirection(" Left "); err != nil {
		t.Errorf("Expected case-insensitive parse, got %v", err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestDirectionText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("right")); err != nil {
		t.Fatal(err)
	}
	if d != Right {
		t.Errorf("Expected Right, got %v", d)
	}
	text, _ := Down.MarshalText()
	if string(text) != "down" {
		t.Errorf("Expected \"down\", got %q", text)
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should not be valid")
	}
}
