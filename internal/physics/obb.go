package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// OBB is an oriented bounding box whose rotation is confined to the
// vertical axis. Center is in world space, HalfExtent in local space.
// The pose mutates only through SetPose; nothing synchronizes the box with
// its owner implicitly.
type OBB struct {
	Center     mgl32.Vec3
	HalfExtent mgl32.Vec3
	axes       [3]mgl32.Vec3
}

// NewOBB creates a box at the given center with the given half extent and
// heading (yaw in radians). Half extent components are made non-negative.
func NewOBB(center, halfExtent mgl32.Vec3, heading float32) OBB {
	o := OBB{
		Center: center,
		HalfExtent: mgl32.Vec3{
			math32.Abs(halfExtent.X()),
			math32.Abs(halfExtent.Y()),
			math32.Abs(halfExtent.Z()),
		},
	}
	o.setHeading(heading)
	return o
}

// SetPose moves the box to a new center and heading.
func (o *OBB) SetPose(center mgl32.Vec3, heading float32) {
	o.Center = center
	o.setHeading(heading)
}

func (o *OBB) setHeading(heading float32) {
	q := mgl32.QuatRotate(heading, worldUp)
	o.axes[0] = q.Rotate(mgl32.Vec3{1, 0, 0})
	o.axes[1] = worldUp
	o.axes[2] = q.Rotate(mgl32.Vec3{0, 0, 1})
}

// Axes returns the box's world-space local axes. Up is always world up
// since rotation is yaw-only; it is returned for symmetry.
func (o *OBB) Axes() (right, up, forward mgl32.Vec3) {
	return o.axes[0], o.axes[1], o.axes[2]
}

// ProjectionRadius returns the support-function value of the box on the
// given axis: the half-length of the box's projection onto it. The axis
// must be normalized or the result scales incorrectly.
func ProjectionRadius(o *OBB, axis mgl32.Vec3) float32 {
	return o.HalfExtent.X()*math32.Abs(o.axes[0].Dot(axis)) +
		o.HalfExtent.Y()*math32.Abs(o.axes[1].Dot(axis)) +
		o.HalfExtent.Z()*math32.Abs(o.axes[2].Dot(axis))
}

// ClosestPoint returns the closest point on the box to p.
func (o *OBB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	local := p.Sub(o.Center)
	result := o.Center
	for i := 0; i < 3; i++ {
		d := clamp(local.Dot(o.axes[i]), -o.HalfExtent[i], o.HalfExtent[i])
		result = result.Add(o.axes[i].Mul(d))
	}
	return result
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
