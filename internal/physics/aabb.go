package physics

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box used as the arena's keep-in volume.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and full size
// dimensions.
func NewAABBFromCenter(center, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// ClampInside returns the center moved the minimum distance so that a box
// with the given half extent fits within the bounds. A half extent larger
// than the bounds clamps to the low edge.
func (a AABB) ClampInside(center, halfExtent mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		lo := a.Min[i] + halfExtent[i]
		hi := a.Max[i] - halfExtent[i]
		if hi < lo {
			hi = lo
		}
		center[i] = clamp(center[i], lo, hi)
	}
	return center
}
