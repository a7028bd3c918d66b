package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// surfaceLift keeps the drawn mouth just in front of the wall it is
// attached to. The portal frame itself sits on the wall.
const surfaceLift = 0.01

// Portal is one end of the linked pair. Its frame is rebuilt from LookAt
// and Up every time it is queried; the owner's rotation is never used.
type Portal struct {
	engine.BaseComponent
	Type      engine.PortalType
	LookAt    rl.Vector3 // surface normal, the side the portal faces
	Up        rl.Vector3
	Tint      rl.Color
	SurfaceID int

	MouthHalfSize rl.Vector2 // local units, multiplied by the owner scale
	ApproachDepth float32    // world units in front of the plane

	other             engine.GameObjectRef
	counterpartActive bool
}

func NewPortal(t engine.PortalType) *Portal {
	tint := rl.Orange
	if t == engine.PortalSecondary {
		tint = rl.SkyBlue
	}
	return &Portal{
		Type:          t,
		LookAt:        rl.Vector3{Z: -1},
		Up:            engine.WorldUp,
		Tint:          tint,
		MouthHalfSize: rl.Vector2{X: 0.8, Y: 1.2},
		ApproachDepth: 2.5,
	}
}

// Place attaches the portal to the surface described by hit.
func (p *Portal) Place(hit engine.RaycastResult) {
	g := p.GetGameObject()
	p.LookAt = rl.Vector3Normalize(hit.Normal)
	p.Up = rl.Vector3Normalize(hit.Up)
	p.SurfaceID = hit.SurfaceID
	g.Transform.Position = hit.Point
}

func (p *Portal) Position() rl.Vector3 {
	return p.GetGameObject().Transform.Position
}

func (p *Portal) LocalToWorldMatrix() rl.Matrix {
	g := p.GetGameObject()
	return engine.BasisMatrix(g.Transform.Position, p.LookAt, p.Up, g.Transform.Scale)
}

func (p *Portal) WorldToLocalMatrix() rl.Matrix {
	return rl.MatrixInvert(p.LocalToWorldMatrix())
}

// SetCounterpart links this portal to other. Pass nil to unlink.
func (p *Portal) SetCounterpart(other *Portal) {
	if other == nil {
		p.other.Clear()
		p.counterpartActive = false
		return
	}
	p.other.Set(other.GetGameObject())
	p.counterpartActive = true
}

// Counterpart resolves the paired portal, or nil when unpaired or when the
// paired portal has been removed.
func (p *Portal) Counterpart() *Portal {
	return engine.Resolve[*Portal](p.other, p.GetGameObject().Scene)
}

func (p *Portal) IsPaired() bool {
	return p.Counterpart() != nil
}

// CounterpartActive reports whether the view texture is bound when drawing.
func (p *Portal) CounterpartActive() bool {
	return p.counterpartActive
}

// LateUpdate drops the texture binding once the counterpart disappears.
func (p *Portal) LateUpdate(frame *engine.Frame) {
	p.counterpartActive = p.IsPaired()
}

// TransformThrough sends a local-to-world matrix into this portal and out
// of the paired one: into this portal's frame, half a turn about its up
// axis, then out through the counterpart's frame.
func (p *Portal) TransformThrough(m rl.Matrix) (rl.Matrix, bool) {
	other := p.Counterpart()
	if other == nil {
		return rl.MatrixIdentity(), false
	}
	out := rl.MatrixMultiply(m, p.WorldToLocalMatrix())
	out = rl.MatrixMultiply(out, engine.HalfTurn)
	out = rl.MatrixMultiply(out, other.LocalToWorldMatrix())
	return out, true
}

// ViewMatrix is the view of cam as seen through this portal, emerging from
// the counterpart. Unpaired portals return identity and false.
func (p *Portal) ViewMatrix(cam *Camera) (rl.Matrix, bool) {
	m, ok := p.TransformThrough(cam.LocalToWorldMatrix())
	if !ok {
		return rl.MatrixIdentity(), false
	}
	return engine.LookTo(engine.Translation(m), engine.ForwardColumn(m), engine.UpColumn(m)), true
}

func (p *Portal) ProjectionMatrix(cam *Camera) rl.Matrix {
	return cam.ProjectionMatrix()
}

// axes returns the unit side, up and forward of the portal frame.
func (p *Portal) axes() (side, up, forward rl.Vector3) {
	m := engine.BasisMatrix(rl.Vector3{}, p.LookAt, p.Up, rl.Vector3One())
	return engine.SideColumn(m), engine.UpColumn(m), engine.ForwardColumn(m)
}

// MapDirection re-bases v from this portal's axes onto the counterpart's
// mirrored axes. Length is preserved.
func (p *Portal) MapDirection(v rl.Vector3) (rl.Vector3, bool) {
	other := p.Counterpart()
	if other == nil {
		return v, false
	}
	side, up, fwd := p.axes()
	oside, oup, ofwd := other.axes()
	out := rl.Vector3Scale(oside, -rl.Vector3DotProduct(v, side))
	out = rl.Vector3Add(out, rl.Vector3Scale(oup, rl.Vector3DotProduct(v, up)))
	out = rl.Vector3Add(out, rl.Vector3Scale(ofwd, -rl.Vector3DotProduct(v, fwd)))
	return out, true
}

// LocalPoint expresses a world point along the portal's unit axes, in
// world units. Z is the signed distance in front of the portal.
func (p *Portal) LocalPoint(world rl.Vector3) rl.Vector3 {
	side, up, fwd := p.axes()
	rel := rl.Vector3Subtract(world, p.Position())
	return rl.Vector3{
		X: rl.Vector3DotProduct(rel, side),
		Y: rl.Vector3DotProduct(rel, up),
		Z: rl.Vector3DotProduct(rel, fwd),
	}
}

// InMouth reports whether a local point lies within the portal outline.
func (p *Portal) InMouth(local rl.Vector3) bool {
	scale := p.GetGameObject().Transform.Scale
	return math32.Abs(local.X) <= p.MouthHalfSize.X*scale.X &&
		math32.Abs(local.Y) <= p.MouthHalfSize.Y*scale.Y
}

// InApproach reports whether a world point is in the zone in front of the
// mouth where a crossing starts.
func (p *Portal) InApproach(world rl.Vector3) bool {
	local := p.LocalPoint(world)
	return p.InMouth(local) && local.Z >= 0 && local.Z < p.ApproachDepth
}

func (p *Portal) Draw(rc *engine.RenderContext) {
	switch rc.Pass {
	case engine.PassDefault:
		tex := engine.TextureNone
		if p.counterpartActive {
			tex = engine.ViewTexture(p.Type)
		}
		rc.Submit(engine.DrawCall{
			Shader:  engine.ShaderPortal,
			Mesh:    engine.MeshPortal,
			World:   p.drawMatrix(),
			Tint:    p.Tint,
			Texture: tex,
		})
	case engine.PassStencilOnly:
		rc.Submit(engine.DrawCall{
			Shader: engine.ShaderStencil,
			Mesh:   engine.MeshPortal,
			World:  p.drawMatrix(),
		})
	}
}

// MouthCorners returns the four world-space corners of the mouth.
func (p *Portal) MouthCorners() []rl.Vector3 {
	m := p.mouthMatrix()
	corners := make([]rl.Vector3, 0, 4)
	for _, c := range [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}} {
		corners = append(corners, engine.TransformPoint(m, rl.Vector3{X: c[0], Y: c[1]}))
	}
	return corners
}

// mouthMatrix scales the unit portal quad to the mouth outline.
func (p *Portal) mouthMatrix() rl.Matrix {
	quad := rl.MatrixScale(p.MouthHalfSize.X*2, p.MouthHalfSize.Y*2, 1)
	return rl.MatrixMultiply(quad, p.LocalToWorldMatrix())
}

// drawMatrix is the mouth outline lifted off the surface along LookAt.
func (p *Portal) drawMatrix() rl.Matrix {
	lift := rl.Vector3Scale(rl.Vector3Normalize(p.LookAt), surfaceLift)
	return rl.MatrixMultiply(p.mouthMatrix(), rl.MatrixTranslate(lift.X, lift.Y, lift.Z))
}
