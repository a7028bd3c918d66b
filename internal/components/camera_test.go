package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

func TestCameraDefaultFrame(t *testing.T) {
	w := newFakeWorld()
	g := engine.NewGameObject("MainCamera")
	cam := NewCamera()
	g.AddComponent(cam)
	w.scene.AddGameObject(g)

	if !vecNear(cam.Forward(), rl.NewVector3(0, 0, -1)) {
		t.Errorf("forward = %v", cam.Forward())
	}
	if !vecNear(cam.Right(), rl.NewVector3(1, 0, 0)) {
		t.Errorf("right = %v", cam.Right())
	}
	if !vecNear(cam.Up(), rl.NewVector3(0, 1, 0)) {
		t.Errorf("up = %v", cam.Up())
	}

	m := cam.LocalToWorldMatrix()
	if !vecNear(engine.ForwardColumn(m), cam.Forward()) {
		t.Errorf("matrix forward = %v", engine.ForwardColumn(m))
	}
}

func TestCameraSwapPointsAlongForward(t *testing.T) {
	cam := NewCamera()
	cam.Swap(rl.NewVector3(0, 0, 1))
	if !vecNear(cam.Forward(), rl.NewVector3(0, 0, 1)) {
		t.Errorf("forward after swap = %v", cam.Forward())
	}
	if !near(cam.Yaw, 90) {
		t.Errorf("yaw = %v, want 90", cam.Yaw)
	}

	cam.Swap(rl.NewVector3(0, 1, 0))
	if cam.Pitch != maxPitch {
		t.Errorf("pitch = %v, want clamp at %v", cam.Pitch, maxPitch)
	}
}

func TestCameraFollowsTargetAtEyeHeight(t *testing.T) {
	w := newFakeWorld()
	_, cam := w.addPlayer(rl.NewVector3(1, 2, 3))

	want := rl.NewVector3(1, 2+cam.EyeHeight, 3)
	if !vecNear(cam.Position(), want) {
		t.Errorf("eye = %v, want %v", cam.Position(), want)
	}
}

func TestCameraMouseLookAndFlyToggle(t *testing.T) {
	w := newFakeWorld()
	player, cam := w.addPlayer(rl.Vector3{})

	w.step(fakeInput{delta: rl.NewVector2(100, 50)})
	if !near(cam.Yaw, 100*cam.LookSpeed) {
		t.Errorf("yaw = %v", cam.Yaw)
	}
	if !near(cam.Pitch, -50*cam.LookSpeed) {
		t.Errorf("pitch = %v", cam.Pitch)
	}

	w.step(fakeInput{triggered: map[int32]bool{rl.KeyF1: true}})
	if !cam.FlyMode {
		t.Fatal("F1 should enable fly mode")
	}

	before := cam.Position()
	w.step(fakeInput{down: map[int32]bool{rl.KeyW: true}})
	if vecNear(cam.Position(), before) {
		t.Error("fly mode camera did not move")
	}
	if !vecNear(player.Position(), rl.Vector3{}) {
		t.Errorf("player moved in fly mode: %v", player.Position())
	}
}
