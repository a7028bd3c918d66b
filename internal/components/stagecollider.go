package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

// StageCollider holds the static level polygons, already in world space.
type StageCollider struct {
	engine.BaseComponent
	Surfaces []physics.Surface
	Colors   map[int]rl.Color
}

func NewStageCollider(surfaces []physics.Surface) *StageCollider {
	return &StageCollider{
		Surfaces: surfaces,
		Colors:   make(map[int]rl.Color),
	}
}

// Resolve sums the push-out offsets of every surface the box overlaps.
// Surfaces for which skip returns true are ignored.
func (s *StageCollider) Resolve(box physics.OBB, skip func(id int) bool) rl.Vector3 {
	var total rl.Vector3
	for _, surf := range s.Surfaces {
		if skip != nil && skip(surf.ID) {
			continue
		}
		total = rl.Vector3Add(total, surf.ResolvePolygon(box))
	}
	return total
}

// Raycast returns the nearest front-facing surface hit.
func (s *StageCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	var best engine.RaycastResult
	found := false
	for _, surf := range s.Surfaces {
		hit, ok := physics.RaycastPolygon(origin, direction, surf, maxDistance)
		if !ok || (found && hit.Distance >= best.Distance) {
			continue
		}
		best = engine.RaycastResult{
			GameObject: s.GetGameObject(),
			SurfaceID:  surf.ID,
			Point:      hit.Point,
			Normal:     hit.Normal,
			Up:         hit.Up,
			Distance:   hit.Distance,
		}
		found = true
	}
	return best, found
}

func (s *StageCollider) Draw(rc *engine.RenderContext) {
	if rc.Pass == engine.PassStencilOnly {
		return
	}
	for _, surf := range s.Surfaces {
		color, ok := s.Colors[surf.ID]
		if !ok {
			color = rl.LightGray
		}
		rc.Submit(engine.DrawCall{
			Shader:  engine.ShaderLit,
			Mesh:    engine.MeshPolygon,
			World:   rl.MatrixIdentity(),
			Tint:    color,
			Polygon: surf.Vertices,
		})
	}
}
