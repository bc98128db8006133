package input

import "led-snake/game/types"

// Action is what a key press asks the driver loop to do.
type Action int

const (
	NoAction Action = iota
	Steer
	Quit
	Restart
)

// KeyInput is a decoded key press.
type KeyInput struct {
	Action    Action
	Direction types.Direction
}

// ParseRune decodes WASD plus the q and r commands.
func ParseRune(r rune) KeyInput {
	switch r {
	case 'w', 'W':
		return KeyInput{Action: Steer, Direction: types.Up}
	case 's', 'S':
		return KeyInput{Action: Steer, Direction: types.Down}
	case 'a', 'A':
		return KeyInput{Action: Steer, Direction: types.Left}
	case 'd', 'D':
		return KeyInput{Action: Steer, Direction: types.Right}
	case 'q', 'Q':
		return KeyInput{Action: Quit}
	case 'r', 'R':
		return KeyInput{Action: Restart}
	}
	return KeyInput{}
}

// Apply stores a steering key in reg and returns the command for the loop.
func (k KeyInput) Apply(reg *Register) Action {
	if k.Action == Steer {
		reg.Store(k.Direction)
	}
	return k.Action
}
