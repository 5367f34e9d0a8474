package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject

	byUID map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.indexUID(g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unindexUID(g)
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindByUID is an O(1) lookup across the whole hierarchy.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
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

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

func (s *Scene) indexUID(g *GameObject) {
	s.byUID[g.UID] = g
	for _, child := range g.Children {
		s.indexUID(child)
	}
}

func (s *Scene) unindexUID(g *GameObject) {
	delete(s.byUID, g.UID)
	for _, child := range g.Children {
		s.unindexUID(child)
	}
}
