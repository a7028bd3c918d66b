package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Matrices here use raylib's column-major layout: column j is
// (M[4j], M[4j+1], M[4j+2], M[4j+3]) and translation lives in M12..M14.
// Frames built by BasisMatrix store side in column 0, up in column 1 and
// forward in column 2, with side = up x forward.

// BasisMatrix builds a local-to-world matrix from a forward and an up
// direction. Both are normalized as given; each axis is scaled by the
// matching scale component and the position is left unscaled.
func BasisMatrix(position, forward, up, scale rl.Vector3) rl.Matrix {
	z := rl.Vector3Normalize(forward)
	y := rl.Vector3Normalize(up)
	x := rl.Vector3CrossProduct(y, z)
	return FromAxes(position, x, y, z, scale)
}

// FromAxes packs explicit axes into a matrix, scaling each axis.
func FromAxes(position, side, up, forward, scale rl.Vector3) rl.Matrix {
	var m rl.Matrix
	m.M0, m.M1, m.M2 = side.X*scale.X, side.Y*scale.X, side.Z*scale.X
	m.M4, m.M5, m.M6 = up.X*scale.Y, up.Y*scale.Y, up.Z*scale.Y
	m.M8, m.M9, m.M10 = forward.X*scale.Z, forward.Y*scale.Z, forward.Z*scale.Z
	m.M12, m.M13, m.M14 = position.X, position.Y, position.Z
	m.M15 = 1
	return m
}

func SideColumn(m rl.Matrix) rl.Vector3    { return rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2} }
func UpColumn(m rl.Matrix) rl.Vector3      { return rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6} }
func ForwardColumn(m rl.Matrix) rl.Vector3 { return rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10} }
func Translation(m rl.Matrix) rl.Vector3   { return rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14} }

// ScaleAxes multiplies the three basis columns of m by scale.
func ScaleAxes(m rl.Matrix, scale rl.Vector3) rl.Matrix {
	m.M0, m.M1, m.M2 = m.M0*scale.X, m.M1*scale.X, m.M2*scale.X
	m.M4, m.M5, m.M6 = m.M4*scale.Y, m.M5*scale.Y, m.M6*scale.Y
	m.M8, m.M9, m.M10 = m.M8*scale.Z, m.M9*scale.Z, m.M10*scale.Z
	return m
}

// HalfTurn is a 180 degree rotation about the local up axis.
var HalfTurn = rl.MatrixScale(-1, 1, -1)

// LookTo builds a right-handed view matrix for an eye looking along forward.
func LookTo(eye, forward, up rl.Vector3) rl.Matrix {
	z := rl.Vector3Normalize(rl.Vector3Negate(forward))
	x := rl.Vector3Normalize(rl.Vector3CrossProduct(up, z))
	y := rl.Vector3CrossProduct(z, x)

	var m rl.Matrix
	m.M0, m.M4, m.M8 = x.X, x.Y, x.Z
	m.M1, m.M5, m.M9 = y.X, y.Y, y.Z
	m.M2, m.M6, m.M10 = z.X, z.Y, z.Z
	m.M12 = -rl.Vector3DotProduct(x, eye)
	m.M13 = -rl.Vector3DotProduct(y, eye)
	m.M14 = -rl.Vector3DotProduct(z, eye)
	m.M15 = 1
	return m
}

// Perspective builds an OpenGL style projection. fovy is in degrees.
func Perspective(fovy, aspect, near, far float32) rl.Matrix {
	f := 1 / math32.Tan(fovy*rl.Deg2rad/2)

	var m rl.Matrix
	m.M0 = f / aspect
	m.M5 = f
	m.M10 = (far + near) / (near - far)
	m.M11 = -1
	m.M14 = 2 * far * near / (near - far)
	return m
}

// TransformPoint applies m to p including the projective divide.
func TransformPoint(m rl.Matrix, p rl.Vector3) rl.Vector3 {
	x := m.M0*p.X + m.M4*p.Y + m.M8*p.Z + m.M12
	y := m.M1*p.X + m.M5*p.Y + m.M9*p.Z + m.M13
	z := m.M2*p.X + m.M6*p.Y + m.M10*p.Z + m.M14
	w := m.M3*p.X + m.M7*p.Y + m.M11*p.Z + m.M15
	if w == 0 {
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	return rl.Vector3{X: x / w, Y: y / w, Z: z / w}
}

// TransformDirection applies only the linear part of m to v.
func TransformDirection(m rl.Matrix, v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: m.M0*v.X + m.M4*v.Y + m.M8*v.Z,
		Y: m.M1*v.X + m.M5*v.Y + m.M9*v.Z,
		Z: m.M2*v.X + m.M6*v.Y + m.M10*v.Z,
	}
}
