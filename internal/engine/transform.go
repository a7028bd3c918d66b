package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// WorldUp is the resting up direction for every entity.
var WorldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

func NewTransform() Transform {
	return Transform{Scale: rl.Vector3One()}
}

// RotationMatrix returns the Euler rotation, applied X then Y then Z.
func (t Transform) RotationMatrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// WorldMatrix composes scale, then rotation, then translation.
func (t Transform) WorldMatrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, t.RotationMatrix()), trans)
}
