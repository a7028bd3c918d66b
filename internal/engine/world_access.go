package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	SurfaceID  int
	Point      rl.Vector3
	Normal     rl.Vector3
	Up         rl.Vector3
	Distance   float32
}

// WorldAccess gives components the simulation context for the frame
// without package level registries.
type WorldAccess interface {
	Scene() *Scene
	MainCamera() *GameObject
	Stage() []*GameObject
	Obstacle() *GameObject
	Portal(t PortalType) *GameObject
	// Raycast returns the nearest stage surface hit along the ray.
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)
	// PlacePortal creates or replaces the portal of type t at hit.
	PlacePortal(t PortalType, hit RaycastResult) *GameObject
}
