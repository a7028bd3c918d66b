package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portalgame/internal/engine"
	"portalgame/internal/physics"
)

// BoxCollider gives its owner an oriented box that tracks the owner's
// transform.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	box    *physics.OBB
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) Awake() {
	b.box = physics.NewOBB(b.GetGameObject(), b.Size, b.Offset)
}

// OBB returns the box for the owner's current transform.
func (b *BoxCollider) OBB() physics.OBB {
	b.box.Update(b.GetGameObject().Transform.WorldMatrix())
	return *b.box
}
