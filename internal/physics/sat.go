package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// IsCollidingHorizontal tests the two boxes with the separating axis
// theorem restricted to the horizontal plane. The candidate axes are each
// box's right and forward axes; with rotation confined to yaw those four
// face normals are sufficient and exact, no edge cross products are needed.
// Returns false as soon as any axis separates.
func IsCollidingHorizontal(a, b *OBB) bool {
	if a == nil || b == nil {
		return false
	}
	ar, _, af := a.Axes()
	br, _, bf := b.Axes()
	for _, axis := range [4]mgl32.Vec3{ar, af, br, bf} {
		if !IsOverlappingOnAxis(a, b, axis) {
			return false
		}
	}
	return true
}

// TryGetPushOutAxisAndDistance evaluates penetration on the same four
// candidate axes and selects the axis of minimum positive overlap as the
// minimum translation vector. Returns false if any axis is non-penetrating
// (the boxes are separated) or if no axis produced a usable candidate
// (degenerate, concentric geometry).
func TryGetPushOutAxisAndDistance(a, b *OBB) (axis mgl32.Vec3, overlap float32, ok bool) {
	if a == nil || b == nil {
		return mgl32.Vec3{}, 0, false
	}
	ar, _, af := a.Axes()
	br, _, bf := b.Axes()
	minOverlap := float32(math32.MaxFloat32)
	var minAxis mgl32.Vec3
	for _, candidate := range [4]mgl32.Vec3{ar, af, br, bf} {
		o := OverlapOnAxis(a, b, candidate)
		if o <= 0 {
			return mgl32.Vec3{}, 0, false
		}
		if o < minOverlap {
			minOverlap = o
			minAxis = candidate
		}
	}
	if minAxis == (mgl32.Vec3{}) {
		return mgl32.Vec3{}, 0, false
	}
	return minAxis, minOverlap, true
}
