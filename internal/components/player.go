package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

// UpSnapEpsilon is how close to world up the virtual up has to get before
// it snaps back exactly.
const UpSnapEpsilon = 1e-4

// antiparallelDot marks a virtual up pointing (almost) straight down.
const antiparallelDot = -0.999

// CrossEvent is announced after the player has been moved through a portal.
type CrossEvent struct {
	From engine.PortalType
	To   engine.PortalType
}

// Player is the first-person body. Velocities are per update step.
type Player struct {
	engine.BaseComponent
	MoveSpeed        float32
	Gravity          float32
	TerminalVelocity float32
	JumpImpulse      float32
	UpLerp           float32
	Scale            float32
	BoxSize          rl.Vector3 // model units
	BoxOffset        rl.Vector3 // model units
	FireDistance     float32
	TitleMode        bool
	Color            rl.Color

	OnCrossed engine.Event[CrossEvent]
	OnFired   engine.Event[engine.PortalType]

	velocity  rl.Vector3
	jumping   bool
	virtualUp rl.Vector3
	entrance  engine.GameObjectRef
	clonedPos rl.Vector3
	clonedFwd rl.Vector3
	clonedUp  rl.Vector3
	box       *physics.OBB
}

func NewPlayer() *Player {
	return &Player{
		MoveSpeed:        0.3,
		Gravity:          0.098,
		TerminalVelocity: -1.0,
		JumpImpulse:      1.4,
		UpLerp:           0.06,
		Scale:            0.06,
		BoxSize:          rl.Vector3{X: 40, Y: 70, Z: 40},
		BoxOffset:        rl.Vector3{X: 0, Y: 35, Z: 0},
		FireDistance:     1000,
		Color:            rl.Beige,
		virtualUp:        engine.WorldUp,
	}
}

func (p *Player) Awake() {
	p.box = physics.NewOBB(p.GetGameObject(), p.BoxSize, p.BoxOffset)
}

func (p *Player) Position() rl.Vector3       { return p.GetGameObject().Transform.Position }
func (p *Player) Velocity() rl.Vector3       { return p.velocity }
func (p *Player) VirtualUp() rl.Vector3      { return p.virtualUp }
func (p *Player) Airborne() bool             { return p.jumping }
func (p *Player) OBB() physics.OBB           { return *p.box }
func (p *Player) ClonedPosition() rl.Vector3 { return p.clonedPos }
func (p *Player) ClonedForward() rl.Vector3  { return p.clonedFwd }
func (p *Player) ClonedUp() rl.Vector3       { return p.clonedUp }

func (p *Player) SetPosition(pos rl.Vector3) {
	p.GetGameObject().Transform.Position = pos
}

func (p *Player) SetVelocity(v rl.Vector3) {
	p.velocity = v
}

// SetVirtualUp tilts the body, as a crossing between non-parallel portals
// does. The body eases back to world up over the following frames.
func (p *Player) SetVirtualUp(up rl.Vector3) {
	p.virtualUp = rl.Vector3Normalize(up)
}

// Entrance returns the portal the player is currently passing through.
func (p *Player) Entrance() *Portal {
	return engine.Resolve[*Portal](p.entrance, p.GetGameObject().Scene)
}

func (p *Player) scaleVector() rl.Vector3 {
	return rl.Vector3{X: p.Scale, Y: p.Scale, Z: p.Scale}
}

// OrientationMatrix is the camera look frame placed at the player's
// position, unscaled.
func (p *Player) OrientationMatrix(cam *Camera) rl.Matrix {
	return engine.BasisMatrix(p.Position(), cam.Forward(), cam.Up(), rl.Vector3One())
}

// WorldMatrix is the body frame: up is the virtual up and the side follows
// the camera right. It drives the collision box.
func (p *Player) WorldMatrix(cam *Camera) rl.Matrix {
	return engine.BasisMatrix(p.Position(), bodyForward(p.virtualUp, cam), p.virtualUp, p.scaleVector())
}

// AdjustedWorldMatrix is the body frame kept upright in world up, used when
// the body is seen through a portal.
func (p *Player) AdjustedWorldMatrix(cam *Camera) rl.Matrix {
	return engine.BasisMatrix(p.Position(), bodyForward(engine.WorldUp, cam), engine.WorldUp, p.scaleVector())
}

func bodyForward(up rl.Vector3, cam *Camera) rl.Vector3 {
	fwd := rl.Vector3CrossProduct(up, cam.Right())
	if rl.Vector3Length(fwd) > 1e-4 {
		return rl.Vector3Normalize(fwd)
	}
	// Camera right is parallel to up; fall back to the look direction.
	f := cam.Forward()
	return rl.Vector3Normalize(rl.Vector3Subtract(f, rl.Vector3Scale(up, rl.Vector3DotProduct(f, up))))
}

// clone computes the ghost on the far side of entrance without touching
// the cached fields.
func (p *Player) clone(cam *Camera, entrance *Portal) (pos, fwd, up rl.Vector3, ok bool) {
	orient, ok := entrance.TransformThrough(p.OrientationMatrix(cam))
	if !ok {
		return pos, fwd, up, false
	}
	body, _ := entrance.TransformThrough(p.WorldMatrix(cam))
	pos = engine.Translation(orient)
	fwd = rl.Vector3Normalize(engine.ForwardColumn(orient))
	up = rl.Vector3Normalize(engine.UpColumn(body))
	return pos, fwd, up, true
}

func (p *Player) refreshClone(cam *Camera) bool {
	entrance := p.Entrance()
	if entrance == nil {
		return false
	}
	pos, fwd, up, ok := p.clone(cam, entrance)
	if !ok {
		return false
	}
	p.clonedPos, p.clonedFwd, p.clonedUp = pos, fwd, up
	return true
}

func cloneMatrix(pos, fwd, up rl.Vector3, scale rl.Vector3) rl.Matrix {
	// The look direction may be pitched; keep the ghost upright on its up.
	flat := rl.Vector3Subtract(fwd, rl.Vector3Scale(up, rl.Vector3DotProduct(fwd, up)))
	if rl.Vector3Length(flat) < 1e-4 {
		flat = fwd
	}
	return engine.BasisMatrix(pos, flat, up, scale)
}

// ClonedWorldMatrix recomputes the ghost and returns its scaled frame, or
// identity when the player is not passing through a portal.
func (p *Player) ClonedWorldMatrix(cam *Camera) rl.Matrix {
	if !p.refreshClone(cam) {
		return rl.MatrixIdentity()
	}
	return cloneMatrix(p.clonedPos, p.clonedFwd, p.clonedUp, p.scaleVector())
}

// SwapPosition moves the player to its ghost in one step: position, body
// up, velocity, camera and collision box all change together.
func (p *Player) SwapPosition(cam *Camera) bool {
	entrance := p.Entrance()
	if entrance == nil || !p.refreshClone(cam) {
		return false
	}
	exit := entrance.Counterpart()
	velocity, _ := entrance.MapDirection(p.velocity)

	p.SetPosition(p.clonedPos)
	p.virtualUp = p.clonedUp
	p.velocity = velocity
	cam.Swap(p.clonedFwd)
	cam.Follow()
	p.box.Update(p.WorldMatrix(cam))
	// The body now stands in front of the exit, which becomes the portal
	// it is passing through.
	p.entrance.Set(exit.GetGameObject())

	p.OnCrossed.Invoke(CrossEvent{From: entrance.Type, To: exit.Type})
	return true
}

func (p *Player) Update(frame *engine.Frame) {
	if p.TitleMode || frame.World == nil {
		return
	}
	cam := engine.GetComponent[*Camera](frame.World.MainCamera())
	if cam == nil {
		return
	}
	input := frame.Input
	if input == nil {
		input = engine.NoInput{}
	}

	if !cam.FlyMode {
		p.move(input, cam)
	}

	p.velocity.Y = math32.Max(p.velocity.Y-p.Gravity, p.TerminalVelocity)
	p.SetPosition(rl.Vector3Add(p.Position(), p.velocity))

	offset := p.collide(frame.World, cam)
	if offset.Y != 0 {
		p.velocity.Y = 0
		p.jumping = false
	}

	p.virtualUp = EaseUp(p.virtualUp, p.UpLerp)

	if !cam.FlyMode {
		if input.MouseLeftTriggered() {
			p.fire(frame.World, cam, engine.PortalPrimary)
		} else if input.MouseRightTriggered() {
			p.fire(frame.World, cam, engine.PortalSecondary)
		}
	}

	p.updateCrossing(frame.World, cam)
}

func (p *Player) move(input engine.Input, cam *Camera) {
	forward := flatten(cam.Forward())
	right := flatten(cam.Right())

	var dir rl.Vector3
	if input.KeyDown(rl.KeyW) {
		dir = rl.Vector3Add(dir, forward)
	}
	if input.KeyDown(rl.KeyS) {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if input.KeyDown(rl.KeyD) {
		dir = rl.Vector3Add(dir, right)
	}
	if input.KeyDown(rl.KeyA) {
		dir = rl.Vector3Subtract(dir, right)
	}
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Scale(rl.Vector3Normalize(dir), p.MoveSpeed)
	}
	p.velocity.X = dir.X
	p.velocity.Z = dir.Z

	if input.KeyTriggered(rl.KeySpace) && !p.jumping {
		p.velocity.Y += p.JumpImpulse
		p.jumping = true
	}
}

func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	if rl.Vector3Length(v) == 0 {
		return v
	}
	return rl.Vector3Normalize(v)
}

// collide resolves the body box against the obstacle and the stage, sums
// every offset and applies the sum once.
func (p *Player) collide(world engine.WorldAccess, cam *Camera) rl.Vector3 {
	p.box.Update(p.WorldMatrix(cam))
	box := *p.box

	var total rl.Vector3
	if obstacle := engine.GetComponent[*BoxCollider](world.Obstacle()); obstacle != nil {
		total = rl.Vector3Add(total, box.ResolveOBB(obstacle.OBB()))
	}

	skip := p.seamFilter(world)
	for _, g := range world.Stage() {
		if stage := engine.GetComponent[*StageCollider](g); stage != nil {
			total = rl.Vector3Add(total, stage.Resolve(box, skip))
		}
	}

	if total != rl.Vector3Zero() {
		p.SetPosition(rl.Vector3Add(p.Position(), total))
		p.box.Update(p.WorldMatrix(cam))
	}
	return total
}

// seamFilter skips the surfaces both portals sit on while the player is
// passing through one of them.
func (p *Player) seamFilter(world engine.WorldAccess) func(id int) bool {
	if p.Entrance() == nil {
		return nil
	}
	var ids []int
	for _, t := range []engine.PortalType{engine.PortalPrimary, engine.PortalSecondary} {
		if portal := engine.GetComponent[*Portal](world.Portal(t)); portal != nil {
			ids = append(ids, portal.SurfaceID)
		}
	}
	return func(id int) bool {
		for _, s := range ids {
			if s == id {
				return true
			}
		}
		return false
	}
}

func (p *Player) fire(world engine.WorldAccess, cam *Camera, t engine.PortalType) {
	hit, ok := world.Raycast(cam.Position(), cam.Forward(), p.FireDistance)
	if !ok {
		return
	}
	if world.PlacePortal(t, hit) != nil {
		p.OnFired.Invoke(t)
	}
}

func (p *Player) updateCrossing(world engine.WorldAccess, cam *Camera) {
	center := p.box.Center

	if entrance := p.Entrance(); entrance != nil {
		local := entrance.LocalPoint(center)
		if !entrance.IsPaired() || !entrance.InMouth(local) || local.Z >= entrance.ApproachDepth {
			p.entrance.Clear()
			return
		}
		if local.Z < 0 {
			p.SwapPosition(cam)
			return
		}
		p.refreshClone(cam)
		return
	}
	p.entrance.Clear()

	for _, t := range []engine.PortalType{engine.PortalPrimary, engine.PortalSecondary} {
		portal := engine.GetComponent[*Portal](world.Portal(t))
		if portal == nil || !portal.IsPaired() || !portal.InApproach(center) {
			continue
		}
		p.entrance.Set(portal.GetGameObject())
		p.refreshClone(cam)
		return
	}
}

// EaseUp moves up a fixed fraction of the way back to world up, snapping
// once close. A body pointing straight down first turns toward the
// horizontal so the angle to world up always shrinks.
func EaseUp(up rl.Vector3, factor float32) rl.Vector3 {
	d := rl.Vector3DotProduct(up, engine.WorldUp)
	if d > 1-UpSnapEpsilon {
		return engine.WorldUp
	}
	target := engine.WorldUp
	if d < antiparallelDot {
		target = rl.Vector3{X: 1}
	}
	return rl.Vector3Normalize(rl.Vector3Lerp(up, target, factor))
}

func (p *Player) Draw(rc *engine.RenderContext) {
	if rc.Pass == engine.PassStencilOnly {
		return
	}
	if p.TitleMode {
		if rc.Pass == engine.PassDefault {
			p.submitBody(rc, p.GetGameObject().Transform.WorldMatrix())
		}
		return
	}
	if rc.World == nil {
		return
	}
	cam := engine.GetComponent[*Camera](rc.World.MainCamera())
	if cam == nil {
		return
	}
	if rc.Pass.IsPortalView() {
		p.submitBody(rc, p.AdjustedWorldMatrix(cam))
	}
	if entrance := p.Entrance(); entrance != nil {
		if pos, fwd, up, ok := p.clone(cam, entrance); ok {
			p.submitBody(rc, cloneMatrix(pos, fwd, up, p.scaleVector()))
		}
	}
}

// submitBody draws the collision box shape with the given body frame.
func (p *Player) submitBody(rc *engine.RenderContext, body rl.Matrix) {
	model := rl.MatrixMultiply(
		rl.MatrixScale(p.BoxSize.X, p.BoxSize.Y, p.BoxSize.Z),
		rl.MatrixTranslate(p.BoxOffset.X, p.BoxOffset.Y, p.BoxOffset.Z),
	)
	rc.Submit(engine.DrawCall{
		Shader: engine.ShaderLit,
		Mesh:   engine.MeshCube,
		World:  rl.MatrixMultiply(model, body),
		Tint:   p.Color,
	})
}
