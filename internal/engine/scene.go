package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		uidMap: make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Start runs Start on every object that has not started yet, including
// objects added after the first call.
func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs the update pass and then the late update pass. Objects
// spawned during the pass are started before the next frame.
func (s *Scene) Update(frame *Frame) {
	objs := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range objs {
		g.Start()
		g.Update(frame)
	}
	for _, g := range objs {
		g.LateUpdate(frame)
	}
}

func (s *Scene) Draw(rc *RenderContext) {
	for _, g := range s.GameObjects {
		g.Draw(rc)
	}
}
