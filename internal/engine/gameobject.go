package engine

import "sync/atomic"

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:       nextUID.Add(1),
		Name:      name,
		Active:    true,
		Transform: NewTransform(),
	}
}

// AddComponent attaches c and runs its Awake hook immediately.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if a, ok := c.(Awaker); ok {
		a.Awake()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(frame *Frame) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(frame)
	}
}

func (g *GameObject) LateUpdate(frame *Frame) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if l, ok := c.(LateUpdater); ok {
			l.LateUpdate(frame)
		}
	}
}

func (g *GameObject) Draw(rc *RenderContext) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Draw(rc)
	}
}
