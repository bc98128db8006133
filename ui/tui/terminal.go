// Package tui renders the LED matrix in a terminal.
package tui

import (
	"led-snake/game/types"
	"led-snake/input"
	"led-snake/ui/led"

	"github.com/gdamore/tcell/v2"
)

// ledRune is drawn twice per LED so cells come out roughly square.
const ledRune = '●'

// Terminal renders the matrix into a tcell screen and pumps key events
// into the input register.
type Terminal struct {
	*led.Frame
	proj   *led.Projector
	screen tcell.Screen
	status string
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen, proj *led.Projector) *Terminal {
	return &Terminal{
		Frame:  led.NewFrame(proj.Len()),
		proj:   proj,
		screen: screen,
	}
}

// SetStatus sets the line printed under the matrix on the next Flush.
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

// Flush latches the staged frame and draws it, row 0 at the bottom.
func (t *Terminal) Flush() error {
	if err := t.Frame.Flush(); err != nil {
		return err
	}
	t.screen.Clear()
	for i, c := range t.Shown {
		row, col := t.proj.Locate(i)
		x := col * 2
		y := t.proj.Rows - 1 - row
		style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		if c != led.Off {
			c = c.OnScreen()
			style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
		t.screen.SetContent(x, y, ledRune, nil, style)
		t.screen.SetContent(x+1, y, ' ', nil, style)
	}
	for i, r := range t.status {
		t.screen.SetContent(i, t.proj.Rows+1, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	return nil
}

// HandleEvent decodes one tcell event.
func (t *Terminal) HandleEvent(ev tcell.Event) input.KeyInput {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.KeyInput{}
	}
	switch key.Key() {
	case tcell.KeyUp:
		return input.KeyInput{Action: input.Steer, Direction: types.Up}
	case tcell.KeyDown:
		return input.KeyInput{Action: input.Steer, Direction: types.Down}
	case tcell.KeyLeft:
		return input.KeyInput{Action: input.Steer, Direction: types.Left}
	case tcell.KeyRight:
		return input.KeyInput{Action: input.Steer, Direction: types.Right}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyInput{Action: input.Quit}
	case tcell.KeyRune:
		return input.ParseRune(key.Rune())
	}
	return input.KeyInput{}
}

// PumpEvents reads screen events until the screen is finalized. Steering
// keys go straight to reg; commands are forwarded on the returned channel.
func (t *Terminal) PumpEvents(reg *input.Register) <-chan input.Action {
	actions := make(chan input.Action, 8)
	go func() {
		defer close(actions)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if action := t.HandleEvent(ev).Apply(reg); action == input.Quit || action == input.Restart {
				select {
				case actions <- action:
				default:
				}
			}
		}
	}()
	return actions
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}
