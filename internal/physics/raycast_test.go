package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayHitsBoxHeadOn(t *testing.T) {
	box := NewOBB(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 1, 1}, 0)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}

	dist, hit := ray.IntersectOBB(&box, 100)
	require.True(t, hit)
	assert.InDelta(t, 9.0, float64(dist), epsilon)
}

func TestRayMissesOffsetBox(t *testing.T) {
	box := NewOBB(mgl32.Vec3{5, 0, 10}, mgl32.Vec3{1, 1, 1}, 0)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}

	_, hit := ray.IntersectOBB(&box, 100)
	assert.False(t, hit)
}

func TestRayRespectsMaxDistance(t *testing.T) {
	box := NewOBB(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 1, 1}, 0)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}

	_, hit := ray.IntersectOBB(&box, 5)
	assert.False(t, hit)
}

func TestRayBehindOriginMisses(t *testing.T) {
	box := NewOBB(mgl32.Vec3{0, 0, -10}, mgl32.Vec3{1, 1, 1}, 0)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}

	_, hit := ray.IntersectOBB(&box, 100)
	assert.False(t, hit)
}

func TestRayFromInsideReportsExit(t *testing.T) {
	box := NewOBB(mgl32.Vec3{}, mgl32.Vec3{2, 2, 2}, 0)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{1, 0, 0}}

	dist, hit := ray.IntersectOBB(&box, 100)
	require.True(t, hit)
	assert.InDelta(t, 2.0, float64(dist), epsilon)
}

func TestRayHitsRotatedBox(t *testing.T) {
	// A 45 degree box centered at z=10 presents a corner toward the
	// origin at distance 10-sqrt2.
	box := NewOBB(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 1, 1}, math32.Pi/4)
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}

	dist, hit := ray.IntersectOBB(&box, 100)
	require.True(t, hit)
	assert.InDelta(t, float64(10-math32.Sqrt2), float64(dist), epsilon)
}

func TestRayNilBox(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{0, 0, 1}}
	_, hit := ray.IntersectOBB(nil, 100)
	assert.False(t, hit)
}
