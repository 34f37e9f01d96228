package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

// BulletPool recycles a fixed set of bullet slots. Acquire fails closed
// when the pool is exhausted rather than allocating; Release clears the
// slot's hit history so a recycled bullet can damage everything again.
type BulletPool struct {
	slots []Bullet
	free  []int
	index map[*Bullet]int
}

func NewBulletPool(capacity int, halfExtent mgl32.Vec3) *BulletPool {
	p := &BulletPool{
		slots: make([]Bullet, capacity),
		free:  make([]int, 0, capacity),
		index: make(map[*Bullet]int, capacity),
	}
	for i := range p.slots {
		b := &p.slots[i]
		b.Entity = engine.NewEntity(fmt.Sprintf("bullet_%d", i))
		b.Tags = []string{"bullet"}
		b.Active = false
		b.hits = make(map[uint64]struct{})
		b.bounds = physics.NewDynamicBounds(halfExtent, b)
		p.index[b] = i
		p.free = append(p.free, i)
	}
	return p
}

// Acquire takes a slot and arms it. Returns false when the pool is empty.
func (p *BulletPool) Acquire(spec BulletSpec, pose engine.Transform, ownerUID uint64) (*Bullet, bool) {
	if len(p.free) == 0 {
		return nil, false
	}
	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	b := &p.slots[i]
	b.Spec = spec
	b.OwnerUID = ownerUID
	b.Transform = pose
	b.planned = pose
	b.ttl = spec.TTL
	b.pierced = 0
	b.spent = false
	b.targetUID = 0
	b.Active = true
	b.bounds.Update()
	return b, true
}

// Release returns a slot to the pool and clears its hit history.
func (p *BulletPool) Release(b *Bullet) {
	i, ok := p.index[b]
	if !ok || !b.Active {
		return
	}
	b.Active = false
	for uid := range b.hits {
		delete(b.hits, uid)
	}
	p.free = append(p.free, i)
}

// CollectActive clears dst and appends every in-flight bullet.
func (p *BulletPool) CollectActive(dst []*Bullet) []*Bullet {
	dst = dst[:0]
	for i := range p.slots {
		if p.slots[i].Active {
			dst = append(dst, &p.slots[i])
		}
	}
	return dst
}

// FreeCount returns the number of available slots.
func (p *BulletPool) FreeCount() int {
	return len(p.free)
}
