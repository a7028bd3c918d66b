package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// Raylib reads the keyboard and mouse through raylib. Mouse buttons and
// look deltas only count while the cursor is captured.
type Raylib struct {
	captured bool
}

func NewRaylib() *Raylib {
	return &Raylib{}
}

// Capture hides and locks the cursor for mouse look.
func (in *Raylib) Capture() {
	rl.DisableCursor()
	in.captured = true
}

// Release shows the cursor again, as for the title screen or the debug
// panel.
func (in *Raylib) Release() {
	rl.EnableCursor()
	in.captured = false
}

func (in *Raylib) Captured() bool { return in.captured }

func (in *Raylib) KeyDown(key int32) bool      { return rl.IsKeyDown(key) }
func (in *Raylib) KeyTriggered(key int32) bool { return rl.IsKeyPressed(key) }

func (in *Raylib) MouseLeftTriggered() bool {
	return in.captured && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (in *Raylib) MouseRightTriggered() bool {
	return in.captured && rl.IsMouseButtonPressed(rl.MouseRightButton)
}

func (in *Raylib) MouseDelta() rl.Vector2 {
	if !in.captured {
		return rl.Vector2{}
	}
	return rl.GetMouseDelta()
}

var _ engine.Input = (*Raylib)(nil)
