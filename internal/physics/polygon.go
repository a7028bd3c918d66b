package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is a convex planar polygon of static level geometry. Vertices
// wind counter-clockwise when seen from the front.
type Surface struct {
	ID       int
	Vertices []rl.Vector3
	Normal   rl.Vector3
	Bounds   AABB
}

// NewSurface computes the normal and bounds of a polygon.
func NewSurface(id int, vertices []rl.Vector3) Surface {
	s := Surface{ID: id, Vertices: vertices}
	if len(vertices) >= 3 {
		e1 := rl.Vector3Subtract(vertices[1], vertices[0])
		e2 := rl.Vector3Subtract(vertices[2], vertices[0])
		s.Normal = rl.Vector3Normalize(rl.Vector3CrossProduct(e1, e2))
	}
	s.Bounds = NewAABBFromPoints(vertices)
	return s
}

// Center is the vertex average.
func (s Surface) Center() rl.Vector3 {
	var c rl.Vector3
	for _, v := range s.Vertices {
		c = rl.Vector3Add(c, v)
	}
	if len(s.Vertices) == 0 {
		return c
	}
	return rl.Vector3Scale(c, 1/float32(len(s.Vertices)))
}

func (s Surface) project(axis rl.Vector3) (lo, hi float32) {
	lo = float32(math32.MaxFloat32)
	hi = -lo
	for _, v := range s.Vertices {
		d := rl.Vector3DotProduct(v, axis)
		lo = math32.Min(lo, d)
		hi = math32.Max(hi, d)
	}
	return lo, hi
}

// Overlaps runs SAT between the box and the polygon over the polygon
// normal, the box axes and every box axis crossed with a polygon edge.
func (s Surface) Overlaps(box OBB) bool {
	if len(s.Vertices) < 3 {
		return false
	}
	if !box.Bounds().Intersects(s.Bounds) {
		return false
	}

	axes := make([]rl.Vector3, 0, 4+3*len(s.Vertices))
	axes = append(axes, s.Normal)
	axes = append(axes, box.Axes[:]...)
	for i := range s.Vertices {
		edge := rl.Vector3Subtract(s.Vertices[(i+1)%len(s.Vertices)], s.Vertices[i])
		for _, a := range box.Axes {
			axis := rl.Vector3CrossProduct(a, edge)
			if rl.Vector3Length(axis) > parallelEpsilon {
				axes = append(axes, rl.Vector3Normalize(axis))
			}
		}
	}

	for _, axis := range axes {
		c := rl.Vector3DotProduct(box.Center, axis)
		r := box.Radius(axis)
		lo, hi := s.project(axis)
		if math32.Min(c+r-lo, hi-(c-r)) <= ContactEpsilon {
			return false
		}
	}
	return true
}

// ResolvePolygon returns the displacement that moves box off the polygon
// plane along the normal, toward the side the box center is on. Returns
// zero vector if no overlap.
func (s Surface) ResolvePolygon(box OBB) rl.Vector3 {
	if !s.Overlaps(box) {
		return rl.Vector3Zero()
	}
	d := rl.Vector3DotProduct(rl.Vector3Subtract(box.Center, s.Vertices[0]), s.Normal)
	depth := box.Radius(s.Normal) - math32.Abs(d)
	if d < 0 {
		depth = -depth
	}
	return rl.Vector3Scale(s.Normal, depth)
}

// Contains reports whether p, assumed on the plane, lies inside the polygon.
func (s Surface) Contains(p rl.Vector3) bool {
	n := len(s.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		edge := rl.Vector3Subtract(s.Vertices[(i+1)%n], s.Vertices[i])
		toP := rl.Vector3Subtract(p, s.Vertices[i])
		if rl.Vector3DotProduct(rl.Vector3CrossProduct(edge, toP), s.Normal) < -ContactEpsilon {
			return false
		}
	}
	return true
}
