package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

// BulletKind is a closed set of bullet behaviors. Each variant carries only
// its own parameters; behavior is dispatched by type switch.
type BulletKind interface {
	isBulletKind()
	String() string
}

// Explosive detonates on the first hit, dealing falloff damage in a blast
// circle.
type Explosive struct {
	BlastRadius float32
}

// Penetration punches through targets, up to MaxPierce of them, before
// despawning.
type Penetration struct {
	MaxPierce int
}

// Homing steers toward the nearest tank it has line of sight to.
type Homing struct {
	TurnRate  float32
	LockRange float32
}

func (Explosive) isBulletKind()   {}
func (Penetration) isBulletKind() {}
func (Homing) isBulletKind()      {}

func (Explosive) String() string   { return "explosive" }
func (Penetration) String() string { return "penetration" }
func (Homing) String() string      { return "homing" }

// BulletSpec is the full parameter set for one shot.
type BulletSpec struct {
	Kind   BulletKind
	Damage float32
	Speed  float32
	TTL    float32
}

// Bullet is a pooled projectile. Like tanks it plans its next pose before
// the collision pass and commits it after.
type Bullet struct {
	engine.Entity
	Spec     BulletSpec
	OwnerUID uint64

	planned engine.Transform
	ttl     float32
	pierced int
	spent   bool
	hits    map[uint64]struct{}

	targetUID uint64 // homing lock, zero when unlocked

	bounds *physics.DynamicBounds
}

// PlannedPosition implements physics.Body.
func (b *Bullet) PlannedPosition() mgl32.Vec3 { return b.planned.Position }

// PlannedHeading implements physics.Body.
func (b *Bullet) PlannedHeading() float32 { return b.planned.Heading }

// ForwardSpeed implements physics.Body.
func (b *Bullet) ForwardSpeed() float32 { return b.Spec.Speed }

// Box returns the bullet's collision box.
func (b *Bullet) Box() *physics.OBB { return b.bounds.Box() }

// PlanMove advances the planned pose one frame. Homing bullets steer first.
func (b *Bullet) PlanMove(dt float32, w *World) {
	heading := b.Transform.Heading
	if h, ok := b.Spec.Kind.(Homing); ok {
		heading = b.steer(h, dt, w)
	}
	next := engine.Transform{Position: b.Transform.Position, Heading: heading}
	next.Position = next.Position.Add(next.Forward().Mul(b.Spec.Speed * dt))
	b.planned = next
	b.ttl -= dt
}

// CommitMove publishes the planned pose.
func (b *Bullet) CommitMove() {
	b.Transform = b.planned
}

// steer picks or keeps a homing target and turns toward it, limited by the
// kind's turn rate. Targets are dropped when dead, out of range, or
// occluded by an obstacle.
func (b *Bullet) steer(h Homing, dt float32, w *World) float32 {
	target := w.tankByUID(b.targetUID)
	if target == nil || !b.canTrack(h, target, w) {
		b.targetUID = 0
		target = b.acquireTarget(h, w)
		if target != nil {
			b.targetUID = target.UID
		}
	}
	heading := b.Transform.Heading
	if target == nil {
		return heading
	}
	delta := target.Transform.Position.Sub(b.Transform.Position)
	desired := math32.Atan2(delta.X(), delta.Z())
	return turnToward(heading, desired, h.TurnRate*dt)
}

func (b *Bullet) acquireTarget(h Homing, w *World) *Tank {
	var best *Tank
	bestDist := h.LockRange
	for _, t := range w.tanks {
		if t.UID == b.OwnerUID || !t.Alive() {
			continue
		}
		d := horizontalDistance(t.Transform.Position, b.Transform.Position)
		if d <= bestDist && b.canTrack(h, t, w) {
			best = t
			bestDist = d
		}
	}
	return best
}

// canTrack reports whether the target is alive, in range, and not hidden
// behind an obstacle.
func (b *Bullet) canTrack(h Homing, target *Tank, w *World) bool {
	if target == nil || !target.Alive() || target.UID == b.OwnerUID {
		return false
	}
	delta := target.Transform.Position.Sub(b.Transform.Position)
	delta[1] = 0
	dist := delta.Len()
	if dist > h.LockRange || dist == 0 {
		return false
	}
	ray := physics.Ray{Origin: b.Transform.Position, Dir: delta.Mul(1 / dist)}
	for _, o := range w.obstacles {
		if _, hit := ray.IntersectOBB(o.Context().Box(), dist); hit {
			return false
		}
	}
	return true
}

// HasHit reports whether this bullet already damaged the given entity.
// Each (bullet, target) pair deals damage at most once per flight.
func (b *Bullet) HasHit(uid uint64) bool {
	_, ok := b.hits[uid]
	return ok
}

// MarkHit records a damaged entity in the hit history.
func (b *Bullet) MarkHit(uid uint64) {
	b.hits[uid] = struct{}{}
}

// RecordPierce counts a punched-through target and reports whether the
// bullet still flies.
func (b *Bullet) RecordPierce(max int) bool {
	b.pierced++
	return b.pierced <= max
}

// MarkSpent flags the bullet for release at the end of the frame.
func (b *Bullet) MarkSpent() {
	b.spent = true
}

// Expired reports whether the bullet should despawn this frame.
func (b *Bullet) Expired() bool {
	return b.spent || b.ttl <= 0
}

func turnToward(current, desired, maxDelta float32) float32 {
	diff := wrapAngle(desired - current)
	if diff > maxDelta {
		diff = maxDelta
	} else if diff < -maxDelta {
		diff = -maxDelta
	}
	return wrapAngle(current + diff)
}

// wrapAngle normalizes an angle to (-pi, pi].
func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

func horizontalDistance(a, b mgl32.Vec3) float32 {
	return math32.Hypot(a.X()-b.X(), a.Z()-b.Z())
}
