package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCollidingHorizontalAxisAligned(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	b := NewOBB(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1}, 0)
	assert.True(t, IsCollidingHorizontal(&a, &b))

	b.SetPose(mgl32.Vec3{3, 0, 0}, 0)
	assert.False(t, IsCollidingHorizontal(&a, &b))
}

func TestIsCollidingHorizontalIsSymmetric(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	b := NewOBB(mgl32.Vec3{1.5, 0, 0.5}, mgl32.Vec3{1, 1, 1}, 0.3)
	assert.Equal(t, IsCollidingHorizontal(&a, &b), IsCollidingHorizontal(&b, &a))
}

func TestIsCollidingHorizontalRotated(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)

	// Rotated 45 degrees the box reaches sqrt2 along world X, so it still
	// touches A at 2.35 but clears it at 2.5.
	b := NewOBB(mgl32.Vec3{2.35, 0, 0}, mgl32.Vec3{1, 1, 1}, math32.Pi/4)
	assert.True(t, IsCollidingHorizontal(&a, &b))

	b.SetPose(mgl32.Vec3{2.5, 0, 0}, math32.Pi/4)
	assert.False(t, IsCollidingHorizontal(&a, &b))
}

func TestIsCollidingHorizontalNil(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	assert.False(t, IsCollidingHorizontal(nil, &a))
	assert.False(t, IsCollidingHorizontal(&a, nil))
	assert.False(t, IsCollidingHorizontal(nil, nil))
}

func TestTryGetPushOutAxisAndDistance(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	b := NewOBB(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1}, 0)

	axis, overlap, ok := TryGetPushOutAxisAndDistance(&a, &b)
	require.True(t, ok)
	assert.InDelta(t, 0.5, float64(overlap), epsilon)
	// The minimum axis is X, sign is whichever face normal won.
	assert.InDelta(t, 1.0, float64(math32.Abs(axis.X())), epsilon)
	assert.InDelta(t, 0.0, float64(axis.Z()), epsilon)
}

func TestTryGetPushOutPicksSmallestOverlap(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	// Offset more along Z than X, so Z has the smaller overlap.
	b := NewOBB(mgl32.Vec3{0.5, 0, 1.6}, mgl32.Vec3{1, 1, 1}, 0)

	axis, overlap, ok := TryGetPushOutAxisAndDistance(&a, &b)
	require.True(t, ok)
	assert.InDelta(t, 0.4, float64(overlap), epsilon)
	assert.InDelta(t, 1.0, float64(math32.Abs(axis.Z())), epsilon)
}

func TestTryGetPushOutSeparated(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	b := NewOBB(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 1, 1}, 0)

	_, _, ok := TryGetPushOutAxisAndDistance(&a, &b)
	assert.False(t, ok)

	_, _, ok = TryGetPushOutAxisAndDistance(nil, &b)
	assert.False(t, ok)
}

func TestTryGetPushOutResolvesOverlap(t *testing.T) {
	a := NewOBB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0)
	b := NewOBB(mgl32.Vec3{2.35, 0, 0}, mgl32.Vec3{1, 1, 1}, math32.Pi/4)

	axis, overlap, ok := TryGetPushOutAxisAndDistance(&a, &b)
	require.True(t, ok)

	// Translating B out along the returned axis must separate the pair.
	dir := axis
	if dir.Dot(b.Center.Sub(a.Center)) < 0 {
		dir = dir.Mul(-1)
	}
	b.SetPose(b.Center.Add(dir.Mul(overlap+1e-3)), math32.Pi/4)
	assert.False(t, IsCollidingHorizontal(&a, &b))
}
