package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const rayEpsilon = 1e-7

// Ray is a half-line used for line-of-sight queries. Dir must be
// normalized.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// IntersectOBB performs a slab test in the box's local frame and returns
// the distance to the nearest intersection within maxDist. A ray starting
// inside the box reports the exit distance.
func (r Ray) IntersectOBB(o *OBB, maxDist float32) (float32, bool) {
	if o == nil {
		return 0, false
	}
	right, up, forward := o.Axes()
	delta := r.Origin.Sub(o.Center)
	localOrigin := mgl32.Vec3{delta.Dot(right), delta.Dot(up), delta.Dot(forward)}
	localDir := mgl32.Vec3{r.Dir.Dot(right), r.Dir.Dot(up), r.Dir.Dot(forward)}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		if math32.Abs(localDir[i]) < rayEpsilon {
			if localOrigin[i] < -o.HalfExtent[i] || localOrigin[i] > o.HalfExtent[i] {
				return 0, false
			}
			continue
		}
		t1 := (-o.HalfExtent[i] - localOrigin[i]) / localDir[i]
		t2 := (o.HalfExtent[i] - localOrigin[i]) / localDir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDist {
		return 0, false
	}
	return t, true
}
