package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

func TestStageColliderRaycastNearest(t *testing.T) {
	wall := func(id int, z float32) physics.Surface {
		return physics.NewSurface(id, []rl.Vector3{
			{X: -5, Y: 0, Z: z},
			{X: 5, Y: 0, Z: z},
			{X: 5, Y: 10, Z: z},
			{X: -5, Y: 10, Z: z},
		})
	}
	g := engine.NewGameObject("Stage")
	stage := NewStageCollider([]physics.Surface{wall(1, -10), wall(2, -5)})
	g.AddComponent(stage)

	hit, ok := stage.Raycast(rl.NewVector3(0, 2, 0), rl.NewVector3(0, 0, -1), 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.SurfaceID != 2 || !near(hit.Distance, 5) {
		t.Errorf("hit surface %d at %v, want 2 at 5", hit.SurfaceID, hit.Distance)
	}
	if hit.GameObject != g {
		t.Error("hit does not point back at the stage object")
	}

	if _, ok := stage.Raycast(rl.NewVector3(0, 2, 0), rl.NewVector3(0, 0, -1), 3); ok {
		t.Error("hit beyond max distance")
	}
}

func TestStageColliderResolveSkipsSurfaces(t *testing.T) {
	w := newFakeWorld()
	stage := w.addFloor()
	box := physics.NewFixedOBB(rl.NewVector3(0, 0.5, 0), rl.NewVector3(2, 2, 2), [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}})

	if got := stage.Resolve(box, nil); !vecNear(got, rl.NewVector3(0, 0.5, 0)) {
		t.Errorf("resolve = %v, want (0,0.5,0)", got)
	}
	skip := func(id int) bool { return id == 1 }
	if got := stage.Resolve(box, skip); got != (rl.Vector3{}) {
		t.Errorf("skipped surface still pushed: %v", got)
	}
}

func TestSpinnerCircles(t *testing.T) {
	g := engine.NewGameObject("Obstacle")
	s := NewSpinner(rl.NewVector3(0, 1, 0), 90, 2, 1)
	g.AddComponent(s)

	s.Update(&engine.Frame{DeltaTime: 1})
	if d := rl.Vector3Distance(g.Transform.Position, s.StartPosition); !near(d, 2) {
		t.Errorf("distance from start = %v, want radius 2", d)
	}
	if g.Transform.Position.Y != 1 {
		t.Errorf("spinner left its plane: %v", g.Transform.Position)
	}

	for i := 0; i < 4; i++ {
		s.Update(&engine.Frame{DeltaTime: 1})
	}
	if g.Transform.Rotation.Y < 0 || g.Transform.Rotation.Y >= 360 {
		t.Errorf("rotation not wrapped: %v", g.Transform.Rotation.Y)
	}
}

func TestBoxColliderTracksOwner(t *testing.T) {
	g := engine.NewGameObject("Obstacle")
	box := NewBoxCollider(rl.NewVector3(2, 4, 2))
	g.AddComponent(box)

	g.Transform.Position = rl.NewVector3(3, 0, 0)
	if c := box.OBB().Center; !vecNear(c, rl.NewVector3(3, 0, 0)) {
		t.Errorf("centre = %v", c)
	}
	if h := box.OBB().HalfSize; !vecNear(h, rl.NewVector3(1, 2, 1)) {
		t.Errorf("half size = %v", h)
	}
}

func TestMeshRendererSkipsStencil(t *testing.T) {
	g := engine.NewGameObject("Obstacle")
	m := NewMeshRenderer(engine.MeshCube, rl.Red, rl.NewVector3(1, 1, 1))
	g.AddComponent(m)
	r := &recordingRenderer{}

	m.Draw(&engine.RenderContext{Pass: engine.PassStencilOnly, Renderer: r})
	m.Draw(&engine.RenderContext{Pass: engine.PassDefault, Renderer: r})
	m.Draw(&engine.RenderContext{Pass: engine.PassPrimaryPortalView, Renderer: r})
	if len(r.calls) != 2 {
		t.Errorf("draw calls = %d, want 2", len(r.calls))
	}
}
