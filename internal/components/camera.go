package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// Camera is a first-person camera. It follows Target at EyeHeight unless
// fly mode is on, in which case it moves on its own and the player may not
// fire portals.
type Camera struct {
	engine.BaseComponent
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	FOV       float32 // degrees
	Near      float32
	Far       float32
	Aspect    float32
	EyeHeight float32
	LookSpeed float32
	FlySpeed  float32
	Target    engine.GameObjectRef
	FlyMode   bool
}

const maxPitch = 89

func NewCamera() *Camera {
	return &Camera{
		Yaw:       -90,
		FOV:       60,
		Near:      0.05,
		Far:       1000,
		Aspect:    16.0 / 9.0,
		EyeHeight: 3.6,
		LookSpeed: 0.1,
		FlySpeed:  0.5,
	}
}

func (c *Camera) Position() rl.Vector3 {
	return c.GetGameObject().Transform.Position
}

func (c *Camera) Forward() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(pitch) * math32.Cos(yaw),
		Y: math32.Sin(pitch),
		Z: math32.Cos(pitch) * math32.Sin(yaw),
	}
}

func (c *Camera) Right() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(c.Forward(), engine.WorldUp))
}

func (c *Camera) Up() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(c.Right(), c.Forward()))
}

func (c *Camera) LocalToWorldMatrix() rl.Matrix {
	return engine.BasisMatrix(c.Position(), c.Forward(), c.Up(), rl.Vector3One())
}

func (c *Camera) ViewMatrix() rl.Matrix {
	return engine.LookTo(c.Position(), c.Forward(), c.Up())
}

func (c *Camera) ProjectionMatrix() rl.Matrix {
	return engine.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Swap points the camera along forward, as after passing through a portal.
func (c *Camera) Swap(forward rl.Vector3) {
	f := rl.Vector3Normalize(forward)
	c.Yaw = math32.Atan2(f.Z, f.X) * rl.Rad2deg
	c.Pitch = clampf(math32.Asin(clampf(f.Y, -1, 1))*rl.Rad2deg, -maxPitch, maxPitch)
}

func (c *Camera) Update(frame *engine.Frame) {
	if frame.Input == nil {
		return
	}
	if frame.Input.KeyTriggered(rl.KeyF1) {
		c.FlyMode = !c.FlyMode
	}

	delta := frame.Input.MouseDelta()
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch = clampf(c.Pitch-delta.Y*c.LookSpeed, -maxPitch, maxPitch)

	if !c.FlyMode {
		return
	}
	var move rl.Vector3
	if frame.Input.KeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, c.Forward())
	}
	if frame.Input.KeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, c.Forward())
	}
	if frame.Input.KeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, c.Right())
	}
	if frame.Input.KeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, c.Right())
	}
	if rl.Vector3Length(move) > 0 {
		g := c.GetGameObject()
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(rl.Vector3Normalize(move), c.FlySpeed))
	}
}

// LateUpdate snaps the eye to the target once it has finished moving.
func (c *Camera) LateUpdate(frame *engine.Frame) {
	if c.FlyMode {
		return
	}
	c.Follow()
}

func (c *Camera) Follow() {
	g := c.GetGameObject()
	target := c.Target.Get(g.Scene)
	if target == nil {
		return
	}
	g.Transform.Position = rl.Vector3Add(target.Transform.Position, rl.Vector3Scale(engine.WorldUp, c.EyeHeight))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
