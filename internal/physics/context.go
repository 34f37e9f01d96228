package physics

// LockAxis is a bitmask over the horizontal axes an entity may not move
// along this frame. X and Z together are LockAll; no other combination
// exists.
type LockAxis uint8

const (
	LockNone LockAxis = 0
	LockX    LockAxis = 1 << 0
	LockZ    LockAxis = 1 << 1
	LockAll           = LockX | LockZ
)

// Has reports whether any of the given bits are set.
func (l LockAxis) Has(bits LockAxis) bool {
	return l&bits != 0
}

func (l LockAxis) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockX:
		return "x"
	case LockZ:
		return "z"
	case LockAll:
		return "all"
	}
	return "invalid"
}

// Context binds one entity to one collision box and carries its lock-axis
// state machine. The lock state is double-buffered: pairwise resolution
// reads the committed mask (finalized last frame) and OR-accumulates into
// the pending mask, so no pair in a frame observes a partially updated
// lock. FinalizeLock commits the pending mask exactly once per frame.
//
// A context built from StaticBounds has no body; it is permanently fully
// locked and its finalize step is a no-op.
type Context struct {
	box       *OBB
	dyn       *DynamicBounds
	body      Body
	committed LockAxis
	pending   LockAxis
}

// NewContext creates the context for a moving entity.
func NewContext(bounds *DynamicBounds, body Body) *Context {
	return &Context{box: bounds.Box(), dyn: bounds, body: body}
}

// NewStaticContext creates the context for an immovable collider.
func NewStaticContext(bounds *StaticBounds) *Context {
	return &Context{box: bounds.Box(), committed: LockAll}
}

// Box returns the context's collision box, shared by reference with the
// entity's bounds. Nil-safe.
func (c *Context) Box() *OBB {
	if c == nil {
		return nil
	}
	return c.box
}

// Immovable reports whether the context represents a static collider.
func (c *Context) Immovable() bool {
	return c.body == nil
}

// Lock returns the mask resolution must treat as input this frame: the
// previous frame's finalized value, or LockAll for static colliders.
func (c *Context) Lock() LockAxis {
	if c.body == nil {
		return LockAll
	}
	return c.committed
}

// ForwardSpeed returns the owning body's current forward speed, zero for
// static colliders.
func (c *Context) ForwardSpeed() float32 {
	if c.body == nil {
		return 0
	}
	return c.body.ForwardSpeed()
}

// RefreshBounds recomputes dynamic bounds from the owner's planned pose.
// Static bounds are left untouched.
func (c *Context) RefreshBounds() {
	if c.dyn != nil {
		c.dyn.Update()
	}
}

// AccumulateLock ORs lock bits contributed by a pairwise resolution into
// the pending mask. The committed mask is never mutated mid-pass.
func (c *Context) AccumulateLock(bits LockAxis) {
	if c.body == nil {
		return
	}
	c.pending |= bits
}

// FinalizeLock commits the accumulated mask as the externally visible lock
// state and resets the accumulator. Call exactly once per frame, after all
// pairwise resolution.
func (c *Context) FinalizeLock() {
	if c.body == nil {
		return
	}
	c.committed = c.pending
	c.pending = LockNone
}
