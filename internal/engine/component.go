package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(frame *Frame)
	Draw(rc *RenderContext)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Awaker is implemented by components that build owned state (an OBB, a
// mesh handle) as soon as they are attached.
type Awaker interface {
	Awake()
}

// LateUpdater runs after every component in the scene has updated.
type LateUpdater interface {
	LateUpdate(frame *Frame)
}

// Frame is handed to every Update call. World replaces the global
// registries components would otherwise reach for.
type Frame struct {
	DeltaTime float32
	Input     Input
	World     WorldAccess
}

// RenderContext describes the pass currently being drawn.
type RenderContext struct {
	Pass       Pass
	View       rl.Matrix
	Projection rl.Matrix
	Renderer   Renderer
	World      WorldAccess
}

// Submit forwards a draw call with the pass matrices filled in.
func (rc *RenderContext) Submit(dc DrawCall) {
	if rc.Renderer == nil {
		return
	}
	dc.View = rc.View
	dc.Projection = rc.Projection
	rc.Renderer.Submit(dc)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(frame *Frame) {}

func (b *BaseComponent) Draw(rc *RenderContext) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
