package physics

import "github.com/go-gl/mathgl/mgl32"

// CollectCircleOverlaps clears dst and appends every context whose box
// overlaps the given horizontal circle. Nil contexts and contexts without a
// box are skipped, so a sparse input slice degrades to fewer results rather
// than an error.
func CollectCircleOverlaps(center mgl32.Vec3, radius float32, contexts []*Context, dst []*Context) []*Context {
	dst = dst[:0]
	for _, c := range contexts {
		if c == nil || c.Box() == nil {
			continue
		}
		if CircleOverlap(center, radius, c.Box()) > 0 {
			dst = append(dst, c)
		}
	}
	return dst
}
