package types

import (
	"fmt"
	"strings"
)

// Board constants for the 5x5 matrix the game was built for.
const (
	NumRows   = 5
	NumCols   = 5
	BoardSize = NumRows * NumCols
)

// Point is a grid coordinate. Row 0 is the bottom row of the matrix.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	Empty Cell = iota
	SnakeBody
	Fruit
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Fruit:
		return "fruit"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Direction is a cardinal direction of travel.
type Direction int32

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta converts a Direction into a single-axis displacement.
// Up increments the row, Down decrements it.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{Row: 1}
	case Down:
		return Point{Row: -1}
	case Left:
		return Point{Col: -1}
	case Right:
		return Point{Col: 1}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing back along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int32(d))
	}
}

// ParseDirection accepts the lowercase names produced by String.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText lets directions appear by name in config files.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText writes the direction name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Outcome is the result of a single move.
type Outcome int

const (
	Moved Outcome = iota
	Grew
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// CollisionType records why a move was blocked.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return fmt.Sprintf("collision(%d)", int(c))
	}
}

// Status is the engine lifecycle state. Halted is terminal for a session.
type Status int

const (
	Alive Status = iota
	Halted
)

func (s Status) String() string {
	if s == Halted {
		return "halted"
	}
	return "alive"
}
