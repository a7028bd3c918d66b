package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// Spinner turns its owner about Y and bobs it along a circle, which makes
// it the one moving obstacle in a stage.
type Spinner struct {
	engine.BaseComponent
	StartPosition  rl.Vector3
	DegreesPerSec  float32
	MovementRadius float32
	MovementSpeed  float32 // radians per second
	time           float32
}

func NewSpinner(startPos rl.Vector3, degreesPerSec, radius, speed float32) *Spinner {
	return &Spinner{
		StartPosition:  startPos,
		DegreesPerSec:  degreesPerSec,
		MovementRadius: radius,
		MovementSpeed:  speed,
	}
}

func (s *Spinner) Update(frame *engine.Frame) {
	g := s.GetGameObject()
	s.time += frame.DeltaTime

	t := s.time * s.MovementSpeed
	g.Transform.Position = rl.Vector3Add(s.StartPosition, rl.Vector3{
		X: math32.Cos(t) * s.MovementRadius,
		Z: math32.Sin(t) * s.MovementRadius,
	})

	g.Transform.Rotation.Y = math32.Mod(g.Transform.Rotation.Y+s.DegreesPerSec*frame.DeltaTime, 360)
}
