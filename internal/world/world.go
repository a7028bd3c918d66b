package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/components"
	"portalgame/internal/config"
	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

// World owns the scene and is the simulation context handed to every
// component through engine.Frame and engine.RenderContext.
type World struct {
	Tuning config.Tuning

	scene    *engine.Scene
	camera   engine.GameObjectRef
	player   engine.GameObjectRef
	obstacle engine.GameObjectRef
	stage    []engine.GameObjectRef
	portals  [2]engine.GameObjectRef

	OnPortalPlaced engine.Event[*components.Portal]
}

func New(tuning config.Tuning) *World {
	return &World{
		Tuning: tuning,
		scene:  engine.NewScene("Main"),
	}
}

// Build populates the scene from a stage: level geometry, the moving
// obstacle, the player at the spawn point and the camera following it.
func (w *World) Build(stage *StageFile) error {
	surfaces, colors, err := stage.Build()
	if err != nil {
		return err
	}
	w.AddStage(surfaces, colors)

	if def := stage.Obstacle; def != nil {
		w.AddObstacle(vec(def.Position), vec(def.Size), def.DegreesPerSec, def.Radius, def.Speed, lookupColor(def.Color))
	}

	w.AddPlayer(vec(stage.Spawn), stage.SpawnYaw)
	w.scene.Start()
	return nil
}

func (w *World) AddStage(surfaces []physics.Surface, colors map[int]rl.Color) *engine.GameObject {
	g := engine.NewGameObject("Stage")
	g.Tags = []string{"stage"}
	collider := components.NewStageCollider(surfaces)
	for id, c := range colors {
		collider.Colors[id] = c
	}
	g.AddComponent(collider)
	w.scene.AddGameObject(g)
	w.stage = append(w.stage, engine.RefTo(g))
	return g
}

func (w *World) AddObstacle(pos, size rl.Vector3, degreesPerSec, radius, speed float32, color rl.Color) *engine.GameObject {
	g := engine.NewGameObject("Obstacle")
	g.Tags = []string{"obstacle"}
	g.Transform.Position = pos
	g.AddComponent(components.NewSpinner(pos, degreesPerSec, radius, speed))
	g.AddComponent(components.NewMeshRenderer(engine.MeshCube, color, size))
	g.AddComponent(components.NewBoxCollider(size))
	w.scene.AddGameObject(g)
	w.obstacle = engine.RefTo(g)
	return g
}

// AddPlayer creates the player and the main camera that follows it.
func (w *World) AddPlayer(spawn rl.Vector3, yaw float32) *components.Player {
	t := w.Tuning

	body := engine.NewGameObject("Player")
	body.Tags = []string{"player"}
	body.Transform.Position = spawn
	body.Transform.Scale = rl.Vector3{X: t.Player.Scale, Y: t.Player.Scale, Z: t.Player.Scale}
	player := components.NewPlayer()
	player.MoveSpeed = t.Player.MoveSpeed
	player.Gravity = t.Player.Gravity
	player.TerminalVelocity = t.Player.TerminalVelocity
	player.JumpImpulse = t.Player.JumpImpulse
	player.UpLerp = t.Player.UpLerp
	player.Scale = t.Player.Scale
	player.BoxSize = t.Player.BoxSize
	player.BoxOffset = t.Player.BoxOffset
	player.FireDistance = t.Portal.FireDistance
	body.AddComponent(player)

	eye := engine.NewGameObject("MainCamera")
	cam := components.NewCamera()
	cam.Yaw = yaw
	cam.FOV = t.Camera.FOV
	cam.Near = t.Camera.Near
	cam.Far = t.Camera.Far
	cam.EyeHeight = t.Camera.EyeHeight
	cam.LookSpeed = t.Camera.LookSpeed
	cam.Target = engine.RefTo(body)
	eye.AddComponent(cam)

	// The camera updates before the player so movement uses this frame's look.
	w.scene.AddGameObject(eye)
	w.scene.AddGameObject(body)
	cam.Follow()

	w.camera = engine.RefTo(eye)
	w.player = engine.RefTo(body)
	return player
}

func (w *World) Scene() *engine.Scene { return w.scene }

func (w *World) MainCamera() *engine.GameObject { return w.camera.Get(w.scene) }

func (w *World) Obstacle() *engine.GameObject { return w.obstacle.Get(w.scene) }

func (w *World) Stage() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(w.stage))
	for _, ref := range w.stage {
		if g := ref.Get(w.scene); g != nil {
			out = append(out, g)
		}
	}
	return out
}

func (w *World) Portal(t engine.PortalType) *engine.GameObject {
	return w.portals[t].Get(w.scene)
}

func (w *World) Camera() *components.Camera {
	return engine.GetComponent[*components.Camera](w.MainCamera())
}

func (w *World) Player() *components.Player {
	return engine.Resolve[*components.Player](w.player, w.scene)
}

// Raycast finds the nearest stage surface along the ray. The obstacle
// blocks the ray without producing a hit.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	var best engine.RaycastResult
	found := false
	for _, g := range w.Stage() {
		stage := engine.GetComponent[*components.StageCollider](g)
		if stage == nil {
			continue
		}
		if hit, ok := stage.Raycast(origin, direction, maxDistance); ok && (!found || hit.Distance < best.Distance) {
			best, found = hit, true
		}
	}
	if !found {
		return best, false
	}
	if box := engine.GetComponent[*components.BoxCollider](w.Obstacle()); box != nil {
		if d, ok := physics.RaycastOBB(origin, direction, box.OBB(), best.Distance); ok && d < best.Distance {
			return engine.RaycastResult{}, false
		}
	}
	return best, true
}

// PlacePortal puts the portal of type t on the hit surface, replacing any
// previous portal of that type, and pairs it with the other one.
func (w *World) PlacePortal(t engine.PortalType, hit engine.RaycastResult) *engine.GameObject {
	if old := w.Portal(t); old != nil {
		w.scene.RemoveGameObject(old)
	}

	g := engine.NewGameObject(t.String() + " portal")
	g.Tags = []string{"portal"}
	s := w.Tuning.Portal.Scale
	g.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}
	portal := components.NewPortal(t)
	portal.MouthHalfSize = rl.Vector2{X: w.Tuning.Portal.MouthHalfWidth, Y: w.Tuning.Portal.MouthHalfHeight}
	portal.ApproachDepth = w.Tuning.Portal.ApproachDepth
	g.AddComponent(portal)
	w.scene.AddGameObject(g)
	portal.Place(hit)
	w.portals[t] = engine.RefTo(g)

	if other := engine.GetComponent[*components.Portal](w.Portal(t.Other())); other != nil {
		portal.SetCounterpart(other)
		other.SetCounterpart(portal)
	}

	w.OnPortalPlaced.Invoke(portal)
	return g
}

// Step runs one fixed update: every component updates, then every late
// update runs. Rendering only reads the result.
func (w *World) Step(deltaTime float32, input engine.Input) {
	w.scene.Update(&engine.Frame{
		DeltaTime: deltaTime,
		Input:     input,
		World:     w,
	})
}

// Render draws one frame. Each paired portal whose mouth is on screen first
// renders the counterpart's view into its texture, then the mouth mask,
// then the main view. The passes drawn are returned in order.
func (w *World) Render(r engine.Renderer) []engine.Pass {
	cam := w.Camera()
	if cam == nil {
		return nil
	}
	view, projection := cam.ViewMatrix(), cam.ProjectionMatrix()
	frustum := ExtractFrustum(view, projection)

	var passes []engine.Pass
	for _, t := range [2]engine.PortalType{engine.PortalPrimary, engine.PortalSecondary} {
		portal := engine.GetComponent[*components.Portal](w.Portal(t))
		if portal == nil {
			continue
		}
		portalView, ok := portal.ViewMatrix(cam)
		if !ok || !frustum.ContainsAny(portal.MouthCorners()) {
			continue
		}
		pass := t.ViewPass()
		w.drawPass(r, pass, portalView, portal.ProjectionMatrix(cam))
		passes = append(passes, pass)
	}

	w.drawPass(r, engine.PassStencilOnly, view, projection)
	w.drawPass(r, engine.PassDefault, view, projection)
	return append(passes, engine.PassStencilOnly, engine.PassDefault)
}

func (w *World) drawPass(r engine.Renderer, pass engine.Pass, view, projection rl.Matrix) {
	r.BeginPass(pass)
	w.scene.Draw(&engine.RenderContext{
		Pass:       pass,
		View:       view,
		Projection: projection,
		Renderer:   r,
		World:      w,
	})
	r.EndPass()
}
