package engine

// Scene is a flat registry of entities with O(1) UID lookup. The game world
// owns one scene and registers every entity that participates in a frame.
type Scene struct {
	Name     string
	Entities []*Entity
	byUID    map[uint64]*Entity
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Entities: make([]*Entity, 0),
		byUID:    make(map[uint64]*Entity),
	}
}

func (s *Scene) AddEntity(e *Entity) {
	if e == nil {
		return
	}
	s.Entities = append(s.Entities, e)
	s.byUID[e.UID] = e
}

func (s *Scene) RemoveEntity(e *Entity) {
	for i, cur := range s.Entities {
		if cur == e {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			delete(s.byUID, e.UID)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *Entity {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*Entity {
	var result []*Entity
	for _, e := range s.Entities {
		if e.HasTag(tag) {
			result = append(result, e)
		}
	}
	return result
}

func (s *Scene) Len() int {
	return len(s.Entities)
}
