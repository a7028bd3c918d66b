package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from view and projection matrices
// using the Gribb/Hartmann method.
func ExtractFrustum(view, projection rl.Matrix) Frustum {
	vp := rl.MatrixMultiply(view, projection)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	// row4 + row1, row4 - row1, then the same for rows 2 and 3.
	var f Frustum
	for i := 0; i < 3; i++ {
		for k, sign := range [2]float32{1, -1} {
			r, w := rows[i], rows[3]
			f.planes[2*i+k] = normalizePlane(Plane{
				normal:   rl.Vector3{X: w[0] + sign*r[0], Y: w[1] + sign*r[1], Z: w[2] + sign*r[2]},
				distance: w[3] + sign*r[3],
			})
		}
	}
	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
// Returns true if the sphere should be rendered
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		// Distance from center to plane
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		// If sphere is completely behind any plane, it's outside
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the convex hull of points may be visible: it
// is culled only when every point lies behind the same plane.
func (f *Frustum) ContainsAny(points []rl.Vector3) bool {
	if len(points) == 0 {
		return false
	}
	for i := 0; i < 6; i++ {
		outside := true
		for _, p := range points {
			if rl.Vector3DotProduct(f.planes[i].normal, p)+f.planes[i].distance >= 0 {
				outside = false
				break
			}
		}
		if outside {
			return false
		}
	}
	return true
}
