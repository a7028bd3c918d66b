package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
)

// MeshRenderer submits a primitive mesh with the owner's world matrix.
type MeshRenderer struct {
	engine.BaseComponent
	Mesh   engine.Mesh
	Shader engine.ShaderKind
	Color  rl.Color
	Size   rl.Vector3 // mesh is a unit primitive scaled by Size
}

func NewMeshRenderer(mesh engine.Mesh, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		Mesh:   mesh,
		Shader: engine.ShaderLit,
		Color:  color,
		Size:   size,
	}
}

func (m *MeshRenderer) Draw(rc *engine.RenderContext) {
	if rc.Pass == engine.PassStencilOnly {
		return
	}
	g := m.GetGameObject()
	world := rl.MatrixMultiply(rl.MatrixScale(m.Size.X, m.Size.Y, m.Size.Z), g.Transform.WorldMatrix())
	rc.Submit(engine.DrawCall{
		Shader: m.Shader,
		Mesh:   m.Mesh,
		World:  world,
		Tint:   m.Color,
	})
}
