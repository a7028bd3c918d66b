package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

func TestPlayerBoxFollowsBody(t *testing.T) {
	w := newFakeWorld()
	player, _ := w.addPlayer(rl.NewVector3(1, 0, -2))
	w.step(nil)

	box := player.OBB()
	if !vecNear(box.Center, rl.NewVector3(1, 2.1, -2)) {
		t.Errorf("box centre = %v", box.Center)
	}
	if !vecNear(box.HalfSize, rl.NewVector3(1.2, 2.1, 1.2)) {
		t.Errorf("box half size = %v", box.HalfSize)
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	w := newFakeWorld()
	w.addFloor()
	player, _ := w.addPlayer(rl.NewVector3(0, 1, 0))
	player.Gravity = 0.098

	for i := 0; i < 60; i++ {
		w.step(nil)
	}
	if !near(player.Position().Y, 0) {
		t.Errorf("feet at %v, want 0", player.Position().Y)
	}
	if player.Velocity().Y != 0 {
		t.Errorf("vertical velocity after landing = %v", player.Velocity().Y)
	}
	if player.Airborne() {
		t.Error("player still airborne on the floor")
	}

	w.step(fakeInput{triggered: map[int32]bool{rl.KeySpace: true}})
	if !player.Airborne() || player.Position().Y <= 0 {
		t.Errorf("jump did not leave the floor: y=%v airborne=%v", player.Position().Y, player.Airborne())
	}
}

func TestPlayerJumpIntoCeilingLands(t *testing.T) {
	w := newFakeWorld()
	w.addFloor()
	w.addCeiling(5)
	player, _ := w.addPlayer(rl.Vector3{})

	// Feet rise to 1.4, so the 4.2 tall box reaches 5.6 and is pushed
	// back down by 0.6.
	w.step(fakeInput{triggered: map[int32]bool{rl.KeySpace: true}})

	if !near(player.Position().Y, 0.8) {
		t.Errorf("feet at %v, want 0.8", player.Position().Y)
	}
	if player.Velocity().Y != 0 {
		t.Errorf("vertical velocity after ceiling hit = %v", player.Velocity().Y)
	}
	if player.Airborne() {
		t.Error("ceiling contact should clear airborne")
	}
}

func TestPlayerStaysGroundedWithoutContact(t *testing.T) {
	w := newFakeWorld()
	player, _ := w.addPlayer(rl.NewVector3(0, 3, 0))

	w.step(nil)
	if player.Airborne() {
		t.Error("only a jump makes the player airborne")
	}
}

func TestPlayerSumsObstacleAndStageOffsets(t *testing.T) {
	w := newFakeWorld()
	floor := w.addFloor()
	obstacle := w.addObstacle(rl.NewVector3(2, 2, 0), rl.NewVector3(2, 2, 2))
	player, cam := w.addPlayer(rl.NewVector3(0, -0.3, 0))

	box := player.OBB()
	box.Update(player.WorldMatrix(cam))
	fromObstacle := box.ResolveOBB(obstacle.OBB())
	fromStage := floor.Resolve(box, nil)
	if !vecNear(fromObstacle, rl.NewVector3(-0.2, 0, 0)) {
		t.Fatalf("obstacle offset = %v", fromObstacle)
	}
	if !vecNear(fromStage, rl.NewVector3(0, 0.3, 0)) {
		t.Fatalf("floor offset = %v", fromStage)
	}

	w.step(nil)

	want := rl.Vector3Add(rl.NewVector3(0, -0.3, 0), rl.Vector3Add(fromObstacle, fromStage))
	if !vecNear(player.Position(), want) {
		t.Errorf("position = %v, want %v", player.Position(), want)
	}
	if player.Velocity().Y != 0 || player.Airborne() {
		t.Errorf("vy = %v airborne = %v after floor push", player.Velocity().Y, player.Airborne())
	}
}

func TestPlayerWalksAlongCameraForward(t *testing.T) {
	w := newFakeWorld()
	player, _ := w.addPlayer(rl.Vector3{})

	w.step(fakeInput{down: map[int32]bool{rl.KeyW: true}})
	want := rl.NewVector3(player.MoveSpeed, 0, 0)
	if !vecNear(player.Position(), want) {
		t.Errorf("position = %v, want %v", player.Position(), want)
	}

	w.step(fakeInput{})
	if !vecNear(player.Position(), want) {
		t.Errorf("player kept sliding: %v", player.Position())
	}
}

func TestPlayerTitleModeSkipsUpdate(t *testing.T) {
	w := newFakeWorld()
	player, _ := w.addPlayer(rl.NewVector3(0, 5, 0))
	player.Gravity = 0.098
	player.TitleMode = true

	w.step(fakeInput{down: map[int32]bool{rl.KeyW: true}, left: true})
	if !vecNear(player.Position(), rl.NewVector3(0, 5, 0)) {
		t.Errorf("title mode moved the player to %v", player.Position())
	}
	if len(w.placed) != 0 {
		t.Error("title mode fired a portal")
	}
}

func TestPlayerFiresPortals(t *testing.T) {
	w := newFakeWorld()
	player, cam := w.addPlayer(rl.Vector3{})
	w.hit = engine.RaycastResult{SurfaceID: 3, Point: rl.NewVector3(8, 3, 0), Normal: rl.NewVector3(-1, 0, 0), Up: engine.WorldUp}
	w.hitOK = true

	var fired []engine.PortalType
	player.OnFired.AddListener(func(t engine.PortalType) { fired = append(fired, t) })

	w.step(fakeInput{left: true, right: true})
	if len(fired) != 1 || fired[0] != engine.PortalPrimary {
		t.Fatalf("left click fired %v", fired)
	}

	w.step(fakeInput{right: true})
	if len(fired) != 2 || fired[1] != engine.PortalSecondary {
		t.Fatalf("right click fired %v", fired)
	}

	cam.FlyMode = true
	w.step(fakeInput{left: true})
	if len(fired) != 2 {
		t.Error("fly mode fired a portal")
	}

	cam.FlyMode = false
	w.hitOK = false
	w.step(fakeInput{left: true})
	if len(fired) != 2 {
		t.Error("missed shot placed a portal")
	}
}

func TestPlayerSwapPositionIsAtomic(t *testing.T) {
	w := newFakeWorld()
	orange, blue := pairedPortals(w)
	// Feet half a unit behind orange's plane, walking into it.
	player, cam := w.addPlayer(rl.NewVector3(0.5, 0, 0))
	player.SetVelocity(rl.NewVector3(0.4, 0, 0))
	player.entrance.Set(orange.GetGameObject())

	var crossed []CrossEvent
	player.OnCrossed.AddListener(func(e CrossEvent) { crossed = append(crossed, e) })

	if !player.SwapPosition(cam) {
		t.Fatal("swap failed")
	}
	if !vecNear(player.Position(), rl.NewVector3(10, 0, 9.5)) {
		t.Errorf("position = %v, want (10,0,9.5)", player.Position())
	}
	if !vecNear(player.Velocity(), rl.NewVector3(0, 0, -0.4)) {
		t.Errorf("velocity = %v, want (0,0,-0.4)", player.Velocity())
	}
	if !vecNear(cam.Forward(), blue.LookAt) {
		t.Errorf("camera forward = %v, want %v", cam.Forward(), blue.LookAt)
	}
	wantEye := rl.Vector3Add(player.Position(), rl.NewVector3(0, cam.EyeHeight, 0))
	if !vecNear(cam.Position(), wantEye) {
		t.Errorf("camera = %v, want %v", cam.Position(), wantEye)
	}
	if !vecNear(player.OBB().Center, rl.NewVector3(10, 2.1, 9.5)) {
		t.Errorf("box centre = %v", player.OBB().Center)
	}
	if player.Entrance() != blue {
		t.Error("exit portal should become the entrance")
	}
	if len(crossed) != 1 || crossed[0] != (CrossEvent{From: engine.PortalPrimary, To: engine.PortalSecondary}) {
		t.Errorf("crossed events = %v", crossed)
	}
}

func TestPlayerWalksThroughPortal(t *testing.T) {
	w := newFakeWorld()
	pairedPortals(w)
	player, _ := w.addPlayer(rl.NewVector3(-1.5, 0, 0))

	crossings := 0
	player.OnCrossed.AddListener(func(CrossEvent) { crossings++ })

	for i := 0; i < 10 && crossings == 0; i++ {
		w.step(fakeInput{down: map[int32]bool{rl.KeyW: true}})
	}
	if crossings != 1 {
		t.Fatalf("crossings = %d, want 1", crossings)
	}
	if p := player.Position(); !near(p.X, 10) || p.Z > 10 {
		t.Errorf("player came out at %v", p)
	}

	// Standing still in front of the exit must not bounce back.
	for i := 0; i < 5; i++ {
		w.step(fakeInput{})
	}
	if crossings != 1 {
		t.Errorf("crossed back without moving: %d", crossings)
	}
}

func TestPlayerGhostAppearsInApproach(t *testing.T) {
	w := newFakeWorld()
	pairedPortals(w)
	player, cam := w.addPlayer(rl.NewVector3(-1, 0, 0))

	if m := player.ClonedWorldMatrix(cam); m != rl.MatrixIdentity() {
		t.Errorf("ghost before approach = %v", m)
	}

	w.step(fakeInput{})
	if player.Entrance() == nil {
		t.Fatal("player in front of the mouth has no entrance")
	}
	m := player.ClonedWorldMatrix(cam)
	if !vecNear(engine.Translation(m), rl.NewVector3(10, 0, 11)) {
		t.Errorf("ghost at %v, want (10,0,11)", engine.Translation(m))
	}
	if !vecNear(player.ClonedPosition(), engine.Translation(m)) {
		t.Error("cached ghost position disagrees with the matrix")
	}

	r := &recordingRenderer{}
	player.Draw(&engine.RenderContext{Pass: engine.PassDefault, Renderer: r, World: w})
	if len(r.calls) != 1 {
		t.Errorf("default pass drew %d bodies, want the ghost only", len(r.calls))
	}
	r.calls = nil
	player.Draw(&engine.RenderContext{Pass: engine.PassPrimaryPortalView, Renderer: r, World: w})
	if len(r.calls) != 2 {
		t.Errorf("portal view drew %d bodies, want body and ghost", len(r.calls))
	}
}

func TestPlayerSeamSurfacesIgnoredWhileCrossing(t *testing.T) {
	w := newFakeWorld()
	orange, _ := pairedPortals(w)
	player, _ := w.addPlayer(rl.NewVector3(-1, 0, 0))

	if player.seamFilter(w) != nil {
		t.Error("seam filter active with no entrance")
	}
	player.entrance.Set(orange.GetGameObject())
	skip := player.seamFilter(w)
	if skip == nil || !skip(10) || !skip(20) || skip(1) {
		t.Error("seam filter should skip exactly the portal surfaces")
	}
}

func TestEaseUpConverges(t *testing.T) {
	for _, start := range []rl.Vector3{{X: 1}, {Y: -1}, {X: 0.6, Y: -0.8}} {
		up := start
		steps := 0
		for ; steps < 200 && up != engine.WorldUp; steps++ {
			prev := rl.Vector3DotProduct(up, engine.WorldUp)
			up = EaseUp(up, 0.06)
			if d := rl.Vector3DotProduct(up, engine.WorldUp); d < prev-eps {
				t.Errorf("from %v: angle to world up grew at step %d", start, steps)
			}
		}
		if up != engine.WorldUp {
			t.Errorf("from %v: up = %v after 200 steps", start, up)
		}
	}
}

func TestPlayerVirtualUpEasesBack(t *testing.T) {
	w := newFakeWorld()
	player, _ := w.addPlayer(rl.Vector3{})
	player.SetVirtualUp(rl.NewVector3(1, 0, 0))

	w.step(nil)
	if up := player.VirtualUp(); up.Y <= 0 || up.X >= 1 {
		t.Errorf("virtual up did not move toward world up: %v", up)
	}
	for i := 0; i < 200; i++ {
		w.step(nil)
	}
	if player.VirtualUp() != engine.WorldUp {
		t.Errorf("virtual up = %v after 200 steps", player.VirtualUp())
	}
}
