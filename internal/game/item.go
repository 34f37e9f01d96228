package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

type ItemKind uint8

const (
	ItemRepair ItemKind = iota
	ItemAmmo
)

func (k ItemKind) String() string {
	switch k {
	case ItemRepair:
		return "repair"
	case ItemAmmo:
		return "ammo"
	}
	return "unknown"
}

// Item is a pickup lying on the arena floor. A tank driving over it
// consumes it.
type Item struct {
	engine.Entity
	Kind   ItemKind
	Amount float32

	bounds *physics.StaticBounds
}

const itemHalfSize = 0.6

func NewItem(name string, pos mgl32.Vec3, kind ItemKind, amount float32) *Item {
	it := &Item{
		Entity: engine.NewEntity(name),
		Kind:   kind,
		Amount: amount,
	}
	it.Tags = []string{"item"}
	it.Transform = engine.Transform{Position: pos}
	it.bounds = physics.NewStaticBounds(pos, mgl32.Vec3{itemHalfSize, itemHalfSize, itemHalfSize}, 0)
	return it
}

// Box returns the item's pickup volume.
func (it *Item) Box() *physics.OBB { return it.bounds.Box() }

// Apply grants the item's effect to a tank.
func (it *Item) Apply(t *Tank) {
	switch it.Kind {
	case ItemRepair:
		t.Repair(it.Amount)
	case ItemAmmo:
		t.Ammo += int(it.Amount)
	}
}
