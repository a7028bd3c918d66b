package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func floorSurface() Surface {
	return NewSurface(1, []rl.Vector3{
		{X: -10, Y: 0, Z: -10},
		{X: -10, Y: 0, Z: 10},
		{X: 10, Y: 0, Z: 10},
		{X: 10, Y: 0, Z: -10},
	})
}

func cube(center rl.Vector3) OBB {
	return NewFixedOBB(center, rl.NewVector3(2, 2, 2), identityAxes)
}

func TestNewSurfaceNormalFollowsWinding(t *testing.T) {
	s := floorSurface()
	if !vecNear(s.Normal, rl.NewVector3(0, 1, 0)) {
		t.Errorf("floor normal = %v", s.Normal)
	}
	if s.Bounds.Min.X != -10 || s.Bounds.Max.Z != 10 {
		t.Errorf("bounds = %v", s.Bounds)
	}
}

func TestResolvePolygonPushesAlongNormal(t *testing.T) {
	s := floorSurface()
	box := cube(rl.NewVector3(3, 0.5, -2))

	got := s.ResolvePolygon(box)
	if !vecNear(got, rl.NewVector3(0, 0.5, 0)) {
		t.Fatalf("Expected (0,0.5,0), got %v", got)
	}

	box.Center = rl.Vector3Add(box.Center, got)
	if again := s.ResolvePolygon(box); again != rl.Vector3Zero() {
		t.Errorf("second resolution should be zero, got %v", again)
	}
}

func TestResolvePolygonPushesTowardCenterSide(t *testing.T) {
	s := floorSurface()
	got := s.ResolvePolygon(cube(rl.NewVector3(0, -0.25, 0)))
	if !vecNear(got, rl.NewVector3(0, -0.75, 0)) {
		t.Errorf("Expected (0,-0.75,0), got %v", got)
	}
}

func TestResolvePolygonMissesOutsideEdges(t *testing.T) {
	s := floorSurface()
	if got := s.ResolvePolygon(cube(rl.NewVector3(12, 0.5, 0))); got != rl.Vector3Zero() {
		t.Errorf("box beyond the edge should not collide, got %v", got)
	}
	if got := s.ResolvePolygon(cube(rl.NewVector3(100, 0, 100))); got != rl.Vector3Zero() {
		t.Errorf("far box should be rejected, got %v", got)
	}
}

func TestResolvePolygonRotatedBox(t *testing.T) {
	s := floorSurface()
	r := rl.Vector3Normalize(rl.NewVector3(1, 1, 0))
	axes := [3]rl.Vector3{r, rl.NewVector3(-r.Y, r.X, 0), {Z: 1}}
	box := NewFixedOBB(rl.NewVector3(0, 1, 0), rl.NewVector3(2, 2, 2), axes)

	got := s.ResolvePolygon(box)
	// A cube tilted 45 degrees reaches sqrt(2) below its center.
	if got.X != 0 || got.Z != 0 || got.Y <= 0.4 || got.Y >= 0.42 {
		t.Errorf("unexpected offset %v", got)
	}
}

func TestResolvePolygonDegenerate(t *testing.T) {
	var s Surface
	if got := s.ResolvePolygon(cube(rl.Vector3Zero())); got != rl.Vector3Zero() {
		t.Errorf("empty polygon should never collide, got %v", got)
	}
}
