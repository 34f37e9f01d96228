package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMinResolveDistance is the smallest push-out magnitude applied to a
// colliding pair. Pushes below it are snapped up to it so that float-scale
// penetrations still produce a deterministic separation instead of jitter.
const DefaultMinResolveDistance = 0.01

// ResolveInfo is the outcome of one pairwise resolution for one entity: the
// push-out vector with its normalized direction and magnitude, and a
// validity flag that is false when no push is required.
type ResolveInfo struct {
	Vector    mgl32.Vec3
	Direction mgl32.Vec3
	Magnitude float32
	Valid     bool
}

func makeResolveInfo(v mgl32.Vec3) ResolveInfo {
	if v == (mgl32.Vec3{}) {
		return ResolveInfo{}
	}
	m := v.Len()
	return ResolveInfo{Vector: v, Direction: v.Mul(1 / m), Magnitude: m, Valid: true}
}

// LockBits returns the lock-axis bits implied by the push: an axis with a
// nonzero push component could not be moved through and should be locked
// for the next frame.
func (r ResolveInfo) LockBits() LockAxis {
	bits := LockNone
	if r.Vector.X() != 0 {
		bits |= LockX
	}
	if r.Vector.Z() != 0 {
		bits |= LockZ
	}
	return bits
}

// Resolve computes the push-out vectors separating two colliding contexts.
// Both bounds are refreshed from their planned poses first. The MTV axis is
// oriented to point from B toward A, then each horizontal component is
// distributed independently:
//
//   - an axis locked for A sends the full push to B (if B is movable);
//   - an axis locked for B sends the full push to A;
//   - with both movable, the body with the smaller absolute forward speed
//     absorbs the full push — the faster body is treated as the aggressor
//     and is not stopped by its own motion. A stationary body absorbs
//     against a moving one; two stationary bodies get no push at all.
//
// Nonzero pushes below minResolve are snapped up to minResolve along their
// direction. Resolve has no side effects; callers apply the vectors and
// accumulate lock bits themselves. Nil contexts yield two invalid infos.
func Resolve(a, b *Context, minResolve float32) (infoA, infoB ResolveInfo) {
	if a == nil || b == nil || a.Box() == nil || b.Box() == nil {
		return ResolveInfo{}, ResolveInfo{}
	}
	a.RefreshBounds()
	b.RefreshBounds()

	lockA := a.Lock()
	lockB := b.Lock()

	axis, overlap, ok := TryGetPushOutAxisAndDistance(a.Box(), b.Box())
	if !ok {
		return ResolveInfo{}, ResolveInfo{}
	}

	// Orient the axis from B toward A; the raw MTV direction is ambiguous.
	delta := a.Box().Center.Sub(b.Box().Center)
	delta[1] = 0
	if axis.Dot(delta) < 0 {
		axis = axis.Mul(-1)
	}

	speedA := math32.Abs(a.ForwardSpeed())
	speedB := math32.Abs(b.ForwardSpeed())

	var pushA, pushB mgl32.Vec3
	for _, i := range [2]int{0, 2} {
		component := axis[i] * overlap
		if component == 0 {
			continue
		}
		bit := LockX
		if i == 2 {
			bit = LockZ
		}
		switch {
		case lockA.Has(bit):
			if !b.Immovable() {
				pushB[i] -= component
			}
		case lockB.Has(bit):
			pushA[i] += component
		case speedA == 0 && speedB == 0:
			// Neither body is moving; leave both in place.
		case speedA < speedB:
			pushA[i] += component
		default:
			// B is slower or the speeds tie; B absorbs.
			pushB[i] -= component
		}
	}

	pushA = snapToMin(pushA, minResolve)
	pushB = snapToMin(pushB, minResolve)
	return makeResolveInfo(pushA), makeResolveInfo(pushB)
}

// snapToMin raises a nonzero push below the minimum magnitude up to the
// minimum, along its existing direction.
func snapToMin(v mgl32.Vec3, min float32) mgl32.Vec3 {
	l := v.Len()
	if l > 0 && l < min {
		return v.Mul(min / l)
	}
	return v
}
