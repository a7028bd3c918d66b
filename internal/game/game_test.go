package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.AssetsDir = filepath.Join("..", "..", "assets")
	return opts
}

func TestNewBuildsTitleScreen(t *testing.T) {
	g, err := New(testOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !g.Title() {
		t.Error("game should open on the title screen")
	}
	if g.World.Obstacle() == nil {
		t.Error("test chamber obstacle missing")
	}

	before := g.World.Player().Position()
	g.World.Step(1.0/60, engine.NoInput{})
	if g.World.Player().Position() != before {
		t.Error("player moved on the title screen")
	}
}

func TestNewReportsMissingFiles(t *testing.T) {
	opts := testOptions()
	opts.StagePath = "stages/missing.json"
	if _, err := New(opts); err == nil {
		t.Error("missing stage should fail")
	}

	opts = testOptions()
	opts.TuningPath = filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(opts.TuningPath, []byte(`{"player": {"scale": -1}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(opts); err == nil {
		t.Error("invalid tuning should fail")
	}
}

func TestEventsFeedDebugPanel(t *testing.T) {
	opts := testOptions()
	opts.Title = false
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cam := g.World.Camera()
	hit, ok := g.World.Raycast(cam.Position(), rl.NewVector3(0, 0, 1), 100)
	if !ok {
		t.Fatal("no wall behind the spawn point")
	}
	g.World.PlacePortal(engine.PortalPrimary, hit)
	if g.placed != 1 {
		t.Errorf("placed = %d, want 1", g.placed)
	}

	g.passes = []engine.Pass{engine.PassStencilOnly, engine.PassDefault}
	text := strings.Join(g.debugLines(), "\n")
	for _, want := range []string{"Entrance:   none", "1 placed, 0 crossings", "stencil-only, default"} {
		if !strings.Contains(text, want) {
			t.Errorf("debug panel missing %q:\n%s", want, text)
		}
	}
}
