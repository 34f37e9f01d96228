package engine

import "sync/atomic"

var uidCounter uint64

// Entity is the identity every simulated object carries: a process-unique
// UID, a human-readable name, optional tags, and the committed transform.
// Concrete entity types (tanks, obstacles, bullets, items) embed Entity and
// add their own state.
type Entity struct {
	UID       uint64
	Name      string
	Tags      []string
	Active    bool
	Transform Transform
}

// NewEntity creates an entity with a fresh UID.
func NewEntity(name string) Entity {
	return Entity{
		UID:    atomic.AddUint64(&uidCounter, 1),
		Name:   name,
		Active: true,
	}
}

func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
