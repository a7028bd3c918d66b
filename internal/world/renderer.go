package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/assets"
	"portalgame/internal/engine"
)

var background = rl.NewColor(24, 26, 32, 255)

// Renderer draws submitted calls with raylib. Portal views and the mouth
// mask go to off-screen targets; the default pass goes to the back buffer.
type Renderer struct {
	width, height int32

	views   [2]rl.RenderTexture2D
	mask    rl.RenderTexture2D
	shaders map[engine.ShaderKind]rl.Shader

	cube     rl.Mesh
	quad     rl.Mesh
	material rl.Material
	white    rl.Texture2D
	// quadFrame turns raylib's XZ plane into the portal's XY mouth.
	quadFrame rl.Matrix

	cache      engine.StateCache
	pass       engine.Pass
	view, proj rl.Matrix
	target     bool

	LightDir  rl.Vector3
	Ambient   float32
	DrawCalls int
}

func NewRenderer(width, height int32) *Renderer {
	return &Renderer{
		width:     width,
		height:    height,
		shaders:   make(map[engine.ShaderKind]rl.Shader),
		LightDir:  rl.Vector3{X: -0.4, Y: -1.0, Z: -0.3},
		Ambient:   0.35,
		quadFrame: engine.FromAxes(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{Z: 1}, rl.Vector3{Y: -1}, rl.Vector3One()),
	}
}

// Initialize creates GPU resources. It needs an open window.
func (r *Renderer) Initialize(cache *assets.Cache) error {
	for i := range r.views {
		r.views[i] = rl.LoadRenderTexture(r.width, r.height)
	}
	r.mask = rl.LoadRenderTexture(r.width, r.height)

	r.cube = rl.GenMeshCube(1, 1, 1)
	r.quad = rl.GenMeshPlane(1, 1, 1, 1)
	r.material = rl.LoadMaterialDefault()
	r.white = r.material.GetMap(rl.MapAlbedo).Texture

	lit, err := cache.LoadShader("shaders/lit.vs", "shaders/lit.fs")
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	portal, err := cache.LoadShader("", "shaders/portal.fs")
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	r.setLightUniforms(lit)
	rl.SetShaderValue(portal, rl.GetShaderLocation(portal, "resolution"),
		[]float32{float32(r.width), float32(r.height)}, rl.ShaderUniformVec2)

	r.shaders[engine.ShaderLit] = lit
	r.shaders[engine.ShaderPortal] = portal
	r.shaders[engine.ShaderUnlit] = r.material.Shader
	r.shaders[engine.ShaderStencil] = r.material.Shader
	return nil
}

func (r *Renderer) setLightUniforms(shader rl.Shader) {
	dir := rl.Vector3Normalize(r.LightDir)
	rl.SetShaderValue(shader, rl.GetShaderLocation(shader, "lightDir"), []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(shader, rl.GetShaderLocation(shader, "ambient"), []float32{r.Ambient}, rl.ShaderUniformFloat)
}

// Mask is the last stencil pass output.
func (r *Renderer) Mask() rl.Texture2D { return r.mask.Texture }

func (r *Renderer) Binds() int { return r.cache.Binds() }

func (r *Renderer) BeginPass(pass engine.Pass) {
	r.pass = pass
	r.cache.Reset()
	r.view, r.proj = rl.Matrix{}, rl.Matrix{}

	r.target = true
	switch pass {
	case engine.PassPrimaryPortalView:
		rl.BeginTextureMode(r.views[engine.PortalPrimary])
	case engine.PassSecondaryPortalView:
		rl.BeginTextureMode(r.views[engine.PortalSecondary])
	case engine.PassStencilOnly:
		rl.BeginTextureMode(r.mask)
	default:
		r.target = false
	}

	if pass == engine.PassStencilOnly {
		rl.ClearBackground(rl.Blank)
	} else {
		rl.ClearBackground(background)
	}
	rl.BeginMode3D(rl.Camera3D{Up: engine.WorldUp, Fovy: 60, Projection: rl.CameraPerspective})
}

func (r *Renderer) EndPass() {
	if r.cache.Current() != engine.ShaderNone {
		rl.EndShaderMode()
	}
	rl.EndMode3D()
	if r.target {
		rl.EndTextureMode()
	}
}

func (r *Renderer) Submit(dc engine.DrawCall) {
	r.DrawCalls++
	if dc.View != r.view || dc.Projection != r.proj {
		rl.DrawRenderBatchActive()
		rl.SetMatrixProjection(dc.Projection)
		rl.SetMatrixModelview(dc.View)
		r.view, r.proj = dc.View, dc.Projection
	}

	shader, ok := r.shaders[dc.Shader]
	if !ok {
		shader = r.material.Shader
	}
	if r.cache.Bind(dc.Shader) {
		rl.DrawRenderBatchActive()
		rl.BeginShaderMode(shader)
	}

	tint := dc.Tint
	if r.pass == engine.PassStencilOnly {
		tint = rl.White
	}

	switch dc.Mesh {
	case engine.MeshCube:
		r.drawMesh(r.cube, shader, dc.World, tint, nil)
	case engine.MeshPortal:
		var tex *rl.Texture2D
		switch dc.Texture {
		case engine.TexturePrimaryView:
			tex = &r.views[engine.PortalPrimary].Texture
		case engine.TextureSecondaryView:
			tex = &r.views[engine.PortalSecondary].Texture
		}
		r.drawMesh(r.quad, shader, rl.MatrixMultiply(r.quadFrame, dc.World), tint, tex)
	case engine.MeshPolygon:
		for i := 1; i+1 < len(dc.Polygon); i++ {
			rl.DrawTriangle3D(dc.Polygon[0], dc.Polygon[i], dc.Polygon[i+1], tint)
		}
	}
}

func (r *Renderer) drawMesh(mesh rl.Mesh, shader rl.Shader, world rl.Matrix, tint rl.Color, tex *rl.Texture2D) {
	mat := r.material
	mat.Shader = shader
	albedo := mat.GetMap(rl.MapAlbedo)
	albedo.Color = tint
	albedo.Texture = r.white
	if tex != nil {
		albedo.Texture = *tex
	}
	rl.DrawMesh(mesh, mat, world)
}

func (r *Renderer) Unload() {
	for _, v := range r.views {
		rl.UnloadRenderTexture(v)
	}
	rl.UnloadRenderTexture(r.mask)
	rl.UnloadMesh(&r.cube)
	rl.UnloadMesh(&r.quad)
}

var _ engine.Renderer = (*Renderer)(nil)
