package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// ContactEpsilon is the penetration depth at or below which two shapes
// count as touching rather than overlapping.
const ContactEpsilon = 1e-4

const parallelEpsilon = 1e-4

// OBB represents an Oriented Bounding Box bound to an owner. Size and
// offset are in the owner's local units; everything else is derived from
// the owner's world matrix on Update.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // World-space half-extents along Axes
	Axes     [3]rl.Vector3 // Unit axes

	owner  *engine.GameObject
	size   rl.Vector3
	offset rl.Vector3
	world  rl.Matrix
}

// NewOBB creates a box of the given local size whose center sits at
// offset from the owner's origin. Call Update before using it.
func NewOBB(owner *engine.GameObject, size, offset rl.Vector3) *OBB {
	o := &OBB{owner: owner, size: size, offset: offset}
	o.Update(rl.MatrixIdentity())
	return o
}

// NewFixedOBB creates an ownerless box from world center, full size and
// unit axes.
func NewFixedOBB(center, size rl.Vector3, axes [3]rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes:     axes,
		size:     size,
	}
}

func (o *OBB) Owner() *engine.GameObject { return o.owner }
func (o *OBB) Size() rl.Vector3          { return o.size }
func (o *OBB) Offset() rl.Vector3        { return o.offset }
func (o *OBB) World() rl.Matrix          { return o.world }

// Update snapshots the owner's world matrix for this frame.
func (o *OBB) Update(world rl.Matrix) {
	o.world = world
	o.Center = rl.Vector3Transform(o.offset, world)

	cols := [3]rl.Vector3{engine.SideColumn(world), engine.UpColumn(world), engine.ForwardColumn(world)}
	lengths := [3]float32{}
	for i, c := range cols {
		lengths[i] = rl.Vector3Length(c)
		o.Axes[i] = rl.Vector3Normalize(c)
	}
	o.HalfSize = rl.Vector3{
		X: math32.Abs(o.size.X) / 2 * lengths[0],
		Y: math32.Abs(o.size.Y) / 2 * lengths[1],
		Z: math32.Abs(o.size.Z) / 2 * lengths[2],
	}
}

// Radius projects the box onto axis.
func (o OBB) Radius(axis rl.Vector3) float32 {
	return o.HalfSize.X*math32.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*math32.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*math32.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
}

// Bounds returns the world AABB enclosing the box.
func (o OBB) Bounds() AABB {
	ext := rl.Vector3{
		X: o.Radius(rl.Vector3{X: 1}),
		Y: o.Radius(rl.Vector3{Y: 1}),
		Z: o.Radius(rl.Vector3{Z: 1}),
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// Corners returns the eight world-space corners.
func (o OBB) Corners() [8]rl.Vector3 {
	var out [8]rl.Vector3
	for i := 0; i < 8; i++ {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		p := o.Center
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], sx*o.HalfSize.X))
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], sy*o.HalfSize.Y))
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], sz*o.HalfSize.Z))
		out[i] = p
	}
	return out
}

// candidateAxes lists the 15 SAT axes, skipping degenerate edge crosses.
func candidateAxes(a, b OBB) []rl.Vector3 {
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			if rl.Vector3Length(axis) > parallelEpsilon {
				axes = append(axes, rl.Vector3Normalize(axis))
			}
		}
	}
	return axes
}

// IntersectsOBB tests if two OBBs overlap by more than ContactEpsilon
// using the Separating Axis Theorem.
func (a OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)
	for _, axis := range candidateAxes(a, b) {
		if a.Radius(axis)+b.Radius(axis)-math32.Abs(rl.Vector3DotProduct(t, axis)) <= ContactEpsilon {
			return false
		}
	}
	return true
}

// ResolveOBB returns the minimum translation vector that pushes a out of b.
// Returns zero vector if no overlap.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math32.MaxFloat32)
	var mtv rl.Vector3

	for _, axis := range candidateAxes(a, b) {
		dist := rl.Vector3DotProduct(t, axis)
		penetration := a.Radius(axis) + b.Radius(axis) - math32.Abs(dist)
		if penetration <= ContactEpsilon {
			return rl.Vector3Zero()
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}
	return mtv
}
