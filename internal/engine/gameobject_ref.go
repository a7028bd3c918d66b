package engine

// GameObjectRef is a weak reference to a GameObject by UID. Portals, the
// player's entrance and the camera target hold these instead of pointers,
// so removing a portal from the scene unlinks everything that pointed at it.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or the empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	if g == nil {
		return GameObjectRef{}
	}
	return GameObjectRef{UID: g.UID}
}

// Get resolves the reference against scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// Alive reports whether the target is still in scene.
func (r GameObjectRef) Alive(scene *Scene) bool {
	return r.Get(scene) != nil
}

// IsValid reports whether the reference was set. It does not check that
// the target still exists; use Alive for that.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	*r = RefTo(g)
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}

// Resolve returns the first T on the referenced object, or the zero T when
// the target is gone or has no such component.
func Resolve[T Component](r GameObjectRef, scene *Scene) T {
	return GetComponent[T](r.Get(scene))
}
