package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

// Obstacle is a static collider: a wall segment, rock, or wreck. Its bounds
// are snapshotted at construction and never recomputed. An obstacle with
// zero hit points is indestructible.
type Obstacle struct {
	engine.Entity
	HalfExtent mgl32.Vec3
	HitPoints  float32

	bounds *physics.StaticBounds
	ctx    *physics.Context
}

func NewObstacle(name string, pos mgl32.Vec3, heading float32, halfExtent mgl32.Vec3, hitPoints float32) *Obstacle {
	o := &Obstacle{
		Entity:     engine.NewEntity(name),
		HalfExtent: halfExtent,
		HitPoints:  hitPoints,
	}
	o.Tags = []string{"obstacle"}
	o.Transform = engine.Transform{Position: pos, Heading: heading}
	o.bounds = physics.NewStaticBounds(pos, halfExtent, heading)
	o.ctx = physics.NewStaticContext(o.bounds)
	return o
}

// Context returns the obstacle's collision context. It is permanently fully
// locked.
func (o *Obstacle) Context() *physics.Context { return o.ctx }

func (o *Obstacle) Destructible() bool {
	return o.HitPoints > 0
}

// ApplyDamage chips the obstacle and reports whether it was destroyed.
// Indestructible obstacles shrug everything off.
func (o *Obstacle) ApplyDamage(amount float32) bool {
	if !o.Destructible() {
		return false
	}
	o.HitPoints -= amount
	if o.HitPoints <= 0 {
		o.HitPoints = 0
		o.Active = false
		return true
	}
	return false
}
