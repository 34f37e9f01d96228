package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is implemented by moving entities. PlannedPosition and PlannedHeading
// report the pose the entity intends to occupy next frame, not its current
// transform; collision is evaluated against the planned pose before the
// move is committed. ForwardSpeed is the entity's current commanded speed,
// used to distribute push-out between two colliding movers.
type Body interface {
	PlannedPosition() mgl32.Vec3
	PlannedHeading() float32
	ForwardSpeed() float32
}

// StaticBounds is a box fixed at construction from a pose snapshot. It has
// no update operation.
type StaticBounds struct {
	box OBB
}

func NewStaticBounds(center, halfExtent mgl32.Vec3, heading float32) *StaticBounds {
	return &StaticBounds{box: NewOBB(center, halfExtent, heading)}
}

func (s *StaticBounds) Box() *OBB {
	return &s.box
}

// DynamicBounds is a box recomputed from its owner's planned pose. Update
// must be called once per collision pass before any pairwise test.
type DynamicBounds struct {
	box   OBB
	owner Body
}

func NewDynamicBounds(halfExtent mgl32.Vec3, owner Body) *DynamicBounds {
	return &DynamicBounds{
		box:   NewOBB(owner.PlannedPosition(), halfExtent, owner.PlannedHeading()),
		owner: owner,
	}
}

// Update recomputes the box from the owner's planned pose.
func (d *DynamicBounds) Update() {
	d.box.SetPose(d.owner.PlannedPosition(), d.owner.PlannedHeading())
}

func (d *DynamicBounds) Box() *OBB {
	return &d.box
}
