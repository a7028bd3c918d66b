package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Mesh int

const (
	MeshCube Mesh = iota
	MeshPortal
	MeshPolygon
)

// TextureSlot names a render target sampled by a draw call.
type TextureSlot int

const (
	TextureNone TextureSlot = iota
	TexturePrimaryView
	TextureSecondaryView
)

// ViewTexture is the slot holding the image rendered through portal t.
func ViewTexture(t PortalType) TextureSlot {
	if t == PortalPrimary {
		return TexturePrimaryView
	}
	return TextureSecondaryView
}

type DrawCall struct {
	Shader     ShaderKind
	Mesh       Mesh
	World      rl.Matrix
	View       rl.Matrix
	Projection rl.Matrix
	Tint       rl.Color
	Texture    TextureSlot
	Polygon    []rl.Vector3 // world space, for MeshPolygon
}

// Renderer is the graphics submission backend.
type Renderer interface {
	BeginPass(pass Pass)
	Submit(dc DrawCall)
	EndPass()
}
