package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

const eps = 1e-3

func near(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func vecNear(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// fakeWorld is a minimal engine.WorldAccess over a real scene.
type fakeWorld struct {
	scene    *engine.Scene
	camera   *engine.GameObject
	obstacle *engine.GameObject
	stage    []*engine.GameObject
	portals  [2]*engine.GameObject

	hit    engine.RaycastResult
	hitOK  bool
	placed []engine.PortalType
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{scene: engine.NewScene("Test")}
}

func (w *fakeWorld) Scene() *engine.Scene           { return w.scene }
func (w *fakeWorld) MainCamera() *engine.GameObject { return w.camera }
func (w *fakeWorld) Stage() []*engine.GameObject    { return w.stage }
func (w *fakeWorld) Obstacle() *engine.GameObject   { return w.obstacle }
func (w *fakeWorld) Portal(t engine.PortalType) *engine.GameObject {
	return w.portals[t]
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.hit, w.hitOK
}

func (w *fakeWorld) PlacePortal(t engine.PortalType, hit engine.RaycastResult) *engine.GameObject {
	w.placed = append(w.placed, t)
	return w.addPortal(t, hit.Point, hit.Normal, hit.SurfaceID).GetGameObject()
}

// addPortal puts a portal exactly at pos facing lookAt and pairs it with
// the other type when present.
func (w *fakeWorld) addPortal(t engine.PortalType, pos, lookAt rl.Vector3, surfaceID int) *Portal {
	if old := w.portals[t]; old != nil {
		w.scene.RemoveGameObject(old)
	}
	g := engine.NewGameObject(t.String())
	g.Transform.Scale = rl.NewVector3(2, 2, 2)
	g.Transform.Position = pos
	portal := NewPortal(t)
	portal.LookAt = lookAt
	portal.Up = engine.WorldUp
	portal.SurfaceID = surfaceID
	g.AddComponent(portal)
	w.scene.AddGameObject(g)
	w.portals[t] = g

	if other := engine.GetComponent[*Portal](w.portals[t.Other()]); other != nil {
		portal.SetCounterpart(other)
		other.SetCounterpart(portal)
	}
	return portal
}

// addPlayer adds a following camera and then the player body at feet.
func (w *fakeWorld) addPlayer(feet rl.Vector3) (*Player, *Camera) {
	body := engine.NewGameObject("Player")
	body.Transform.Position = feet
	player := NewPlayer()
	player.Gravity = 0
	body.AddComponent(player)

	eye := engine.NewGameObject("MainCamera")
	cam := NewCamera()
	cam.Yaw = 0
	cam.Target = engine.RefTo(body)
	eye.AddComponent(cam)

	w.scene.AddGameObject(eye)
	w.scene.AddGameObject(body)
	w.camera = eye
	cam.Follow()
	return player, cam
}

func (w *fakeWorld) addFloor() *StageCollider {
	g := engine.NewGameObject("Stage")
	stage := NewStageCollider([]physics.Surface{
		physics.NewSurface(1, []rl.Vector3{
			{X: -20, Y: 0, Z: -20},
			{X: -20, Y: 0, Z: 20},
			{X: 20, Y: 0, Z: 20},
			{X: 20, Y: 0, Z: -20},
		}),
	})
	g.AddComponent(stage)
	w.scene.AddGameObject(g)
	w.stage = append(w.stage, g)
	return stage
}

// addCeiling adds a 40x40 surface at height y facing down.
func (w *fakeWorld) addCeiling(y float32) {
	g := engine.NewGameObject("Ceiling")
	g.AddComponent(NewStageCollider([]physics.Surface{
		physics.NewSurface(2, []rl.Vector3{
			{X: 20, Y: y, Z: -20},
			{X: 20, Y: y, Z: 20},
			{X: -20, Y: y, Z: 20},
			{X: -20, Y: y, Z: -20},
		}),
	}))
	w.scene.AddGameObject(g)
	w.stage = append(w.stage, g)
}

// addObstacle adds a static box collider and makes it the world's obstacle.
func (w *fakeWorld) addObstacle(pos, size rl.Vector3) *BoxCollider {
	g := engine.NewGameObject("Obstacle")
	g.Transform.Position = pos
	box := NewBoxCollider(size)
	g.AddComponent(box)
	w.scene.AddGameObject(g)
	w.obstacle = g
	return box
}

func (w *fakeWorld) step(input engine.Input) {
	w.scene.Update(&engine.Frame{DeltaTime: 1.0 / 60, Input: input, World: w})
}

// fakeInput reports a fixed set of held and triggered controls.
type fakeInput struct {
	down      map[int32]bool
	triggered map[int32]bool
	left      bool
	right     bool
	delta     rl.Vector2
}

func (in fakeInput) KeyDown(key int32) bool      { return in.down[key] }
func (in fakeInput) KeyTriggered(key int32) bool { return in.triggered[key] }
func (in fakeInput) MouseLeftTriggered() bool    { return in.left }
func (in fakeInput) MouseRightTriggered() bool   { return in.right }
func (in fakeInput) MouseDelta() rl.Vector2      { return in.delta }

// recordingRenderer keeps every submitted draw call.
type recordingRenderer struct {
	calls []engine.DrawCall
}

func (r *recordingRenderer) BeginPass(engine.Pass)     {}
func (r *recordingRenderer) Submit(dc engine.DrawCall) { r.calls = append(r.calls, dc) }
func (r *recordingRenderer) EndPass()                  {}
