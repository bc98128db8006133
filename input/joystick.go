package input

import "led-snake/game/types"

// ADCMax is the full-scale reading of the 12-bit joystick converter.
const ADCMax = 4096

// DefaultErrorMargin is how close to either end of the range a reading
// must be before it counts as a deflection.
const DefaultErrorMargin = 50

// AnalogReader returns one raw sample per axis. Larger y is up and
// larger x is right.
type AnalogReader interface {
	ReadXY() (x, y uint16)
}

// AnalogFunc adapts a plain function to AnalogReader.
type AnalogFunc func() (x, y uint16)

func (f AnalogFunc) ReadXY() (x, y uint16) { return f() }

// Joystick resolves analog samples into directions. Only a full
// deflection resolves; the vertical axis wins when both are deflected.
type Joystick struct {
	Reader      AnalogReader
	ErrorMargin int
}

func NewJoystick(reader AnalogReader, margin int) *Joystick {
	if margin <= 0 {
		margin = DefaultErrorMargin
	}
	return &Joystick{Reader: reader, ErrorMargin: margin}
}

// Resolve maps one sample to a direction. ok is false while the stick
// rests inside the dead band.
func (j *Joystick) Resolve(x, y uint16) (types.Direction, bool) {
	hi := ADCMax - j.ErrorMargin
	lo := j.ErrorMargin
	switch {
	case int(y) >= hi:
		return types.Up, true
	case int(y) <= lo:
		return types.Down, true
	case int(x) >= hi:
		return types.Right, true
	case int(x) <= lo:
		return types.Left, true
	}
	return types.Up, false
}

// Sample reads the stick and resolves the reading.
func (j *Joystick) Sample() (types.Direction, bool) {
	x, y := j.Reader.ReadXY()
	return j.Resolve(x, y)
}

// AxisToADC converts a normalized axis value in [-1, 1] to converter
// counts, so gamepads can stand in for the analog stick.
func AxisToADC(v float32) uint16 {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return uint16((v + 1) / 2 * (ADCMax - 1))
}
