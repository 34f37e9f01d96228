package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBody struct {
	pos     mgl32.Vec3
	heading float32
	speed   float32
}

func (s *stubBody) PlannedPosition() mgl32.Vec3 { return s.pos }
func (s *stubBody) PlannedHeading() float32     { return s.heading }
func (s *stubBody) ForwardSpeed() float32       { return s.speed }

func newMoverContext(pos mgl32.Vec3, speed float32) *Context {
	b := &stubBody{pos: pos, speed: speed}
	return NewContext(NewDynamicBounds(mgl32.Vec3{1, 1, 1}, b), b)
}

func TestResolveFasterPushesSlower(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 5)
	b := newMoverContext(mgl32.Vec3{1.5, 0, 0}, 2)

	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	require.True(t, infoB.Valid)
	vecsclose(t, mgl32.Vec3{0.5, 0, 0}, infoB.Vector)
	assert.InDelta(t, 0.5, float64(infoB.Magnitude), epsilon)
	vecsclose(t, mgl32.Vec3{1, 0, 0}, infoB.Direction)
}

func TestResolveStationaryAbsorbsAgainstMover(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 5)
	b := newMoverContext(mgl32.Vec3{1.5, 0, 0}, 0)

	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	require.True(t, infoB.Valid)
	vecsclose(t, mgl32.Vec3{0.5, 0, 0}, infoB.Vector)
}

func TestResolveBothStationaryNoPush(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 0)
	b := newMoverContext(mgl32.Vec3{1.5, 0, 0}, 0)

	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	assert.False(t, infoB.Valid)
}

func TestResolveLockedAxisShortCircuits(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 0)
	b := newMoverContext(mgl32.Vec3{1.5, 0, 0}, 5)

	// A locked on X last frame. Speed order would send the push to A,
	// but the lock forces it onto B.
	a.AccumulateLock(LockX)
	a.FinalizeLock()

	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	require.True(t, infoB.Valid)
	vecsclose(t, mgl32.Vec3{0.5, 0, 0}, infoB.Vector)
}

func TestResolveAgainstStatic(t *testing.T) {
	wall := NewStaticContext(NewStaticBounds(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0))
	mover := newMoverContext(mgl32.Vec3{1.5, 0, 0}, 3)

	infoM, infoW := Resolve(mover, wall, DefaultMinResolveDistance)
	require.True(t, infoM.Valid)
	vecsclose(t, mgl32.Vec3{0.5, 0, 0}, infoM.Vector)
	assert.False(t, infoW.Valid)

	// Statics never move even when the mover is locked.
	mover.AccumulateLock(LockX)
	mover.FinalizeLock()
	infoM, infoW = Resolve(mover, wall, DefaultMinResolveDistance)
	assert.False(t, infoM.Valid)
	assert.False(t, infoW.Valid)
}

func TestResolveSnapsTinyPushToMinimum(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 5)
	b := newMoverContext(mgl32.Vec3{1.999, 0, 0}, 0)

	_, infoB := Resolve(a, b, DefaultMinResolveDistance)
	require.True(t, infoB.Valid)
	assert.InDelta(t, DefaultMinResolveDistance, float64(infoB.Magnitude), 1e-5)
}

func TestResolveSeparatedPair(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 5)
	b := newMoverContext(mgl32.Vec3{5, 0, 0}, 2)

	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	assert.False(t, infoB.Valid)
}

func TestResolveNilContexts(t *testing.T) {
	a := newMoverContext(mgl32.Vec3{}, 5)
	infoA, infoB := Resolve(nil, a, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	assert.False(t, infoB.Valid)
}

func TestResolveRefreshesPlannedPose(t *testing.T) {
	bodyA := &stubBody{speed: 5}
	a := NewContext(NewDynamicBounds(mgl32.Vec3{1, 1, 1}, bodyA), bodyA)
	b := newMoverContext(mgl32.Vec3{5, 0, 0}, 0)

	// Not colliding at construction; the planned pose moves A into B.
	bodyA.pos = mgl32.Vec3{3.5, 0, 0}
	infoA, infoB := Resolve(a, b, DefaultMinResolveDistance)
	assert.False(t, infoA.Valid)
	require.True(t, infoB.Valid)
	vecsclose(t, mgl32.Vec3{0.5, 0, 0}, infoB.Vector)
}

func TestResolveInfoLockBits(t *testing.T) {
	assert.Equal(t, LockNone, ResolveInfo{}.LockBits())
	assert.Equal(t, LockX, makeResolveInfo(mgl32.Vec3{0.3, 0, 0}).LockBits())
	assert.Equal(t, LockZ, makeResolveInfo(mgl32.Vec3{0, 0, -0.2}).LockBits())
	assert.Equal(t, LockAll, makeResolveInfo(mgl32.Vec3{0.1, 0, 0.1}).LockBits())
}
