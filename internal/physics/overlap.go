package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OverlapOnAxis returns the signed overlap of the two boxes' projections on
// the given normalized axis. Positive is the overlapping amount; negative or
// zero means separated, with the magnitude being the gap.
func OverlapOnAxis(a, b *OBB, axis mgl32.Vec3) float32 {
	dist := math32.Abs(b.Center.Sub(a.Center).Dot(axis))
	return ProjectionRadius(a, axis) + ProjectionRadius(b, axis) - dist
}

// IsOverlappingOnAxis reports whether the two boxes overlap when projected
// on the axis.
func IsOverlappingOnAxis(a, b *OBB, axis mgl32.Vec3) bool {
	return OverlapOnAxis(a, b, axis) > 0
}

// CircleOverlap returns the signed overlap between a horizontal circle and
// the box: the circle radius minus the horizontal distance from the circle
// center to the closest point on the box. A circle center inside the box
// clamps to itself, giving the full radius as overlap. The vertical
// component is ignored.
func CircleOverlap(center mgl32.Vec3, radius float32, o *OBB) float32 {
	delta := center.Sub(o.Center)
	delta[1] = 0
	right, _, forward := o.Axes()
	localX := delta.Dot(right)
	localZ := delta.Dot(forward)
	dx := localX - clamp(localX, -o.HalfExtent.X(), o.HalfExtent.X())
	dz := localZ - clamp(localZ, -o.HalfExtent.Z(), o.HalfExtent.Z())
	return radius - math32.Hypot(dx, dz)
}
