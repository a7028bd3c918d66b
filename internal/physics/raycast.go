package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// RayHit describes where a ray met a surface.
type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Up       rl.Vector3 // unit tangent in the surface plane
	Distance float32
}

// flatThreshold is the tangent length under which world up is treated as
// parallel to the surface normal.
const flatThreshold = 1e-3

// RaycastPolygon intersects a ray with the front face of s.
func RaycastPolygon(origin, direction rl.Vector3, s Surface, maxDistance float32) (RayHit, bool) {
	if len(s.Vertices) < 3 {
		return RayHit{}, false
	}
	direction = rl.Vector3Normalize(direction)
	denom := rl.Vector3DotProduct(direction, s.Normal)
	if denom >= 0 {
		return RayHit{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(s.Vertices[0], origin), s.Normal) / denom
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	if !s.Contains(point) {
		return RayHit{}, false
	}
	return RayHit{
		Point:    point,
		Normal:   s.Normal,
		Up:       SurfaceUp(s.Normal, direction),
		Distance: t,
	}, true
}

// SurfaceUp picks the up tangent for something mounted on a surface with
// the given normal: world up projected onto the plane, or the incoming
// direction projected onto the plane for floors and ceilings.
func SurfaceUp(normal, incoming rl.Vector3) rl.Vector3 {
	worldUp := rl.Vector3{Y: 1}
	up := rl.Vector3Subtract(worldUp, rl.Vector3Scale(normal, rl.Vector3DotProduct(worldUp, normal)))
	if rl.Vector3Length(up) > flatThreshold {
		return rl.Vector3Normalize(up)
	}
	up = rl.Vector3Subtract(incoming, rl.Vector3Scale(normal, rl.Vector3DotProduct(incoming, normal)))
	if rl.Vector3Length(up) > flatThreshold {
		return rl.Vector3Normalize(up)
	}
	// Straight down onto a floor: any tangent will do.
	return rl.Vector3{Z: -1 * sign(normal.Y)}
}

// RaycastOBB intersects a ray with a box. Rays starting inside report a
// hit at distance zero.
func RaycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (float32, bool) {
	direction = rl.Vector3Normalize(direction)
	rel := rl.Vector3Subtract(origin, box.Center)
	localOrigin := rl.Vector3{
		X: rl.Vector3DotProduct(rel, box.Axes[0]),
		Y: rl.Vector3DotProduct(rel, box.Axes[1]),
		Z: rl.Vector3DotProduct(rel, box.Axes[2]),
	}
	localDir := rl.Vector3{
		X: rl.Vector3DotProduct(direction, box.Axes[0]),
		Y: rl.Vector3DotProduct(direction, box.Axes[1]),
		Z: rl.Vector3DotProduct(direction, box.Axes[2]),
	}
	local := AABB{Min: rl.Vector3Negate(box.HalfSize), Max: box.HalfSize}
	return local.RayIntersects(localOrigin, localDir, maxDistance)
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
