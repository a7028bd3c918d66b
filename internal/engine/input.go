package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the per-frame polling surface. Key codes are raylib key codes.
type Input interface {
	KeyDown(key int32) bool
	KeyTriggered(key int32) bool
	MouseLeftTriggered() bool
	MouseRightTriggered() bool
	MouseDelta() rl.Vector2
}

// NoInput reports nothing pressed.
type NoInput struct{}

func (NoInput) KeyDown(int32) bool        { return false }
func (NoInput) KeyTriggered(int32) bool   { return false }
func (NoInput) MouseLeftTriggered() bool  { return false }
func (NoInput) MouseRightTriggered() bool { return false }
func (NoInput) MouseDelta() rl.Vector2    { return rl.Vector2{} }
