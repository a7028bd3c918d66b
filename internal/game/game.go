package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/assets"
	"portalgame/internal/audio"
	"portalgame/internal/components"
	"portalgame/internal/config"
	"portalgame/internal/engine"
	"portalgame/internal/input"
	"portalgame/internal/world"
)

// Options select the window and the files a game is built from. Relative
// stage and tuning paths resolve against AssetsDir.
type Options struct {
	AssetsDir  string
	StagePath  string
	TuningPath string
	Width      int32
	Height     int32
	Title      bool
}

func DefaultOptions() Options {
	return Options{
		AssetsDir:  "assets",
		StagePath:  "stages/test_chamber.json",
		TuningPath: "tuning.json",
		Width:      1280,
		Height:     720,
		Title:      true,
	}
}

type Game struct {
	World     *world.World
	DebugMode bool

	opts     Options
	assets   *assets.Cache
	renderer *world.Renderer
	audio    *audio.Manager
	input    *input.Raylib

	passes    []engine.Pass
	crossings int
	placed    int

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads tuning and the stage and builds the world. It does not touch
// the window, so it can run headless.
func New(opts Options) (*Game, error) {
	cache := assets.NewCache(opts.AssetsDir)

	tuning := config.Default()
	if opts.TuningPath != "" {
		t, err := config.Load(cache.Path(opts.TuningPath))
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		tuning = t
	}

	stage, err := world.LoadStage(cache.Path(opts.StagePath))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	w := world.New(tuning)
	if err := w.Build(stage); err != nil {
		return nil, fmt.Errorf("game: build %s: %w", stage.Name, err)
	}
	log.Printf("Loaded stage %q: %d objects", stage.Name, len(w.Scene().GameObjects))

	g := &Game{
		World:  w,
		opts:   opts,
		assets: cache,
		audio:  audio.NewManager(),
		input:  input.NewRaylib(),
	}
	if p := w.Player(); p != nil {
		p.TitleMode = opts.Title
	}
	g.wireEvents()
	return g, nil
}

func (g *Game) wireEvents() {
	g.World.OnPortalPlaced.AddListener(func(p *components.Portal) {
		g.placed++
		pos := p.Position()
		log.Printf("Placed %s portal on surface %d at (%.2f, %.2f, %.2f)", p.Type, p.SurfaceID, pos.X, pos.Y, pos.Z)
		cue := audio.CuePrimaryPlaced
		if p.Type == engine.PortalSecondary {
			cue = audio.CueSecondaryPlaced
		}
		g.audio.PlayAt(cue, pos)
	})

	if player := g.World.Player(); player != nil {
		player.OnCrossed.AddListener(func(e components.CrossEvent) {
			g.crossings++
			log.Printf("Crossed %s -> %s", e.From, e.To)
			g.audio.Play(audio.CueCrossed)
		})
	}
}

// Title reports whether the title screen is showing.
func (g *Game) Title() bool {
	p := g.World.Player()
	return p != nil && p.TitleMode
}

// Start leaves the title screen and hands control to the player.
func (g *Game) Start() {
	if p := g.World.Player(); p != nil {
		p.TitleMode = false
	}
	g.input.Capture()
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(g.opts.Width, g.opts.Height, "Portal Game")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	initDebugStyle()

	if cam := g.World.Camera(); cam != nil {
		cam.Aspect = float32(g.opts.Width) / float32(g.opts.Height)
	}

	g.renderer = world.NewRenderer(g.opts.Width, g.opts.Height)
	if err := g.renderer.Initialize(g.assets); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	defer g.renderer.Unload()
	defer g.assets.Unload()

	if err := g.audio.Init(filepath.Join(g.opts.AssetsDir, "sounds")); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer g.audio.Close()

	if !g.Title() {
		g.input.Capture()
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsKeyPressed(rl.KeyF3) {
		g.DebugMode = !g.DebugMode
		if g.DebugMode {
			g.input.Release()
		} else if !g.Title() {
			g.input.Capture()
		}
	}
	if g.Title() && rl.IsKeyPressed(rl.KeyEnter) {
		g.Start()
	}

	g.World.Step(rl.GetFrameTime(), g.input)

	if cam := g.World.Camera(); cam != nil {
		g.audio.SetListener(cam.Position(), cam.Forward(), cam.Up())
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.renderer.DrawCalls = 0
	g.passes = g.World.Render(g.renderer)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	if g.Title() {
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		title := "PORTAL GAME"
		rl.DrawText(title, w/2-rl.MeasureText(title, 60)/2, h/3, 60, rl.RayWhite)
		prompt := "Press Enter to start"
		rl.DrawText(prompt, w/2-rl.MeasureText(prompt, 24)/2, h/3+80, 24, rl.LightGray)
		return
	}

	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("LMB/RMB to fire portals, F1 fly camera, F3 debug", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		g.drawDebugOverlay()
	}
}
