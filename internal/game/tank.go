package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"tankarena/internal/config"
	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

// TankInput is one frame's worth of driver commands. Throttle and Turn are
// clamped to [-1, 1].
type TankInput struct {
	Throttle float32
	Turn     float32
	Fire     bool
}

// Tank is a player-driven vehicle. Its movement is planned one frame ahead:
// PlanMove computes the pose the tank wants next, the collision pass
// adjusts it, and CommitMove publishes it.
type Tank struct {
	engine.Entity
	NetID uuid.UUID

	MaxSpeed   float32
	TurnRate   float32
	MaxHealth  float32
	Health     float32
	Ammo       int
	HalfExtent mgl32.Vec3
	Loadout    BulletSpec

	input    TankInput
	planned  engine.Transform
	speed    float32
	cooldown float32

	bounds *physics.DynamicBounds
	ctx    *physics.Context
}

func NewTank(name string, pos mgl32.Vec3, heading float32, cfg config.Tank) *Tank {
	t := &Tank{
		Entity:     engine.NewEntity(name),
		NetID:      uuid.New(),
		MaxSpeed:   cfg.MaxSpeed,
		TurnRate:   cfg.TurnRate,
		MaxHealth:  cfg.Health,
		Health:     cfg.Health,
		Ammo:       cfg.Ammo,
		HalfExtent: mgl32.Vec3{cfg.HalfWidth, cfg.HalfHeight, cfg.HalfDepth},
	}
	t.Tags = []string{"tank"}
	t.Transform = engine.Transform{Position: pos, Heading: heading}
	t.planned = t.Transform
	t.bounds = physics.NewDynamicBounds(t.HalfExtent, t)
	t.ctx = physics.NewContext(t.bounds, t)
	return t
}

// PlannedPosition implements physics.Body.
func (t *Tank) PlannedPosition() mgl32.Vec3 { return t.planned.Position }

// PlannedHeading implements physics.Body.
func (t *Tank) PlannedHeading() float32 { return t.planned.Heading }

// ForwardSpeed implements physics.Body.
func (t *Tank) ForwardSpeed() float32 { return t.speed }

// Context returns the tank's collision context.
func (t *Tank) Context() *physics.Context { return t.ctx }

func (t *Tank) SetInput(in TankInput) {
	in.Throttle = clampInput(in.Throttle)
	in.Turn = clampInput(in.Turn)
	t.input = in
}

// PlanMove computes the pose the tank intends to occupy next frame.
// Turning is always allowed; translation along a committed lock axis is
// suppressed before the delta is applied, and the result is clamped inside
// the arena.
func (t *Tank) PlanMove(dt float32, arena physics.AABB) {
	lock := t.ctx.Lock()
	heading := t.Transform.Heading + t.input.Turn*t.TurnRate*dt
	t.speed = t.input.Throttle * t.MaxSpeed

	next := engine.Transform{Position: t.Transform.Position, Heading: heading}
	delta := next.Forward().Mul(t.speed * dt)
	if lock.Has(physics.LockX) {
		delta[0] = 0
	}
	if lock.Has(physics.LockZ) {
		delta[2] = 0
	}
	next.Position = arena.ClampInside(t.Transform.Position.Add(delta), t.HalfExtent)
	t.planned = next

	if t.cooldown > 0 {
		t.cooldown -= dt
	}
}

// ApplyResolve shifts the planned pose by a collision push-out and records
// the axes the push touched for next frame's lock mask.
func (t *Tank) ApplyResolve(info physics.ResolveInfo) {
	if !info.Valid {
		return
	}
	t.planned.Position = t.planned.Position.Add(info.Vector)
	t.ctx.AccumulateLock(info.LockBits())
}

// CommitMove publishes the planned pose as the current transform.
func (t *Tank) CommitMove() {
	t.Transform = t.planned
}

// WantsFire reports whether the tank is asking to shoot and is able to.
func (t *Tank) WantsFire() bool {
	return t.input.Fire && t.cooldown <= 0 && t.Ammo > 0 && t.Alive()
}

// ConsumeShot spends one round and restarts the cooldown.
func (t *Tank) ConsumeShot(cooldown float32) {
	t.Ammo--
	t.cooldown = cooldown
}

// ApplyDamage reduces health and reports whether the tank was destroyed by
// this hit.
func (t *Tank) ApplyDamage(amount float32) bool {
	if !t.Alive() {
		return false
	}
	t.Health -= amount
	if t.Health <= 0 {
		t.Health = 0
		t.Active = false
		return true
	}
	return false
}

// Repair restores health up to the maximum.
func (t *Tank) Repair(amount float32) {
	t.Health += amount
	if t.Health > t.MaxHealth {
		t.Health = t.MaxHealth
	}
}

func (t *Tank) Alive() bool {
	return t.Health > 0
}

// MuzzlePose returns the transform a bullet spawns at: just beyond the
// tank's front face, facing the tank's heading.
func (t *Tank) MuzzlePose(bulletRadius float32) engine.Transform {
	offset := t.HalfExtent.Z() + bulletRadius*2
	return engine.Transform{
		Position: t.Transform.Position.Add(t.Transform.Forward().Mul(offset)),
		Heading:  t.Transform.Heading,
	}
}

func clampInput(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
