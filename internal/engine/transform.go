package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is an entity's pose in the world: a position and a heading.
// Heading is the yaw angle in radians about the vertical (+Y) axis; all
// entities in the arena rotate only about that axis.
type Transform struct {
	Position mgl32.Vec3
	Heading  float32
}

// Forward returns the unit vector the transform is facing. Heading zero
// faces +Z.
func (t Transform) Forward() mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(t.Heading), 0, math32.Cos(t.Heading)}
}

// Right returns the unit vector to the transform's right.
func (t Transform) Right() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(t.Heading), 0, -math32.Sin(t.Heading)}
}
