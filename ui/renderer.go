package ui

import (
	"led-snake/game/types"
	"led-snake/input"
	"led-snake/ui/led"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around the matrix
	statusHeight  = 30 // Space for the status line under the matrix
)

// Renderer draws the LED matrix in a raylib window. It implements led.Display;
// Flush latches the staged frame and Draw paints the latched frame, so the
// window keeps redrawing at full frame rate between game ticks.
type Renderer struct {
	*led.Frame
	proj         *led.Projector
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(proj *led.Projector, ledSize int) *Renderer {
	r := &Renderer{
		Frame:    led.NewFrame(proj.Len()),
		proj:     proj,
		cellSize: int32(ledSize),
	}
	r.screenWidth = r.cellSize*int32(proj.Cols) + borderPadding*2
	r.screenHeight = r.cellSize*int32(proj.Rows) + borderPadding*2 + statusHeight
	return r
}

// Open creates the window. raylib must be driven from the main goroutine.
func (r *Renderer) Open(title string) {
	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	rl.SetTargetFPS(60)
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	cellW := (r.screenWidth - borderPadding*2) / int32(r.proj.Cols)
	cellH := (r.screenHeight - borderPadding*2 - statusHeight) / int32(r.proj.Rows)
	r.cellSize = min(cellW, cellH)

	r.offsetX = (r.screenWidth - r.cellSize*int32(r.proj.Cols)) / 2
	r.offsetY = borderPadding
}

// Draw paints the last flushed frame with row 0 at the bottom, as the
// matrix is mounted.
func (r *Renderer) Draw(status string) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	radius := float32(r.cellSize) * 0.4
	for i, c := range r.Shown {
		row, col := r.proj.Locate(i)
		cx := r.offsetX + int32(col)*r.cellSize + r.cellSize/2
		cy := r.offsetY + int32(r.proj.Rows-1-row)*r.cellSize + r.cellSize/2
		rl.DrawCircle(cx, cy, radius, toRaylib(c))
		rl.DrawCircleLines(cx, cy, radius, rl.DarkGray)
	}

	fontSize := int32(statusHeight - 10)
	textY := r.offsetY + r.cellSize*int32(r.proj.Rows) + 5
	rl.DrawText(status, r.offsetX, textY, fontSize, rl.White)
	rl.EndDrawing()
}

// ReadKeys decodes the keys pressed since the last frame.
func (r *Renderer) ReadKeys() input.KeyInput {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return input.KeyInput{Action: input.Steer, Direction: types.Up}
	case rl.IsKeyPressed(rl.KeyDown):
		return input.KeyInput{Action: input.Steer, Direction: types.Down}
	case rl.IsKeyPressed(rl.KeyLeft):
		return input.KeyInput{Action: input.Steer, Direction: types.Left}
	case rl.IsKeyPressed(rl.KeyRight):
		return input.KeyInput{Action: input.Steer, Direction: types.Right}
	}
	if ch := rl.GetCharPressed(); ch != 0 {
		return input.ParseRune(ch)
	}
	return input.KeyInput{}
}

// GamepadXY reads the left stick of the first gamepad as joystick counts.
// With no gamepad attached it reports the stick at rest.
func (r *Renderer) GamepadXY() (x, y uint16) {
	if !rl.IsGamepadAvailable(0) {
		return input.AxisToADC(0), input.AxisToADC(0)
	}
	ax := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX)
	ay := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY)
	// raylib reports up as negative Y.
	return input.AxisToADC(ax), input.AxisToADC(-ay)
}

func toRaylib(c led.Color) rl.Color {
	c = c.OnScreen()
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
