package game

import (
	"go.uber.org/zap"

	"tankarena/internal/physics"
)

// collisionPass runs one frame of pair dispatch. Every dynamic bounds is
// refreshed from its planned pose first, so no pairwise test mixes a stale
// box with a fresh one. Pair iteration is deterministic: tank pairs in
// index order with the inner loop starting at i+1, then tank against
// obstacle through the resolve pipeline, then the boolean-only bullet and
// item tests.
func (w *World) collisionPass(active []*Bullet) {
	for _, t := range w.tanks {
		t.Context().RefreshBounds()
	}
	for _, b := range active {
		b.bounds.Update()
	}

	for i := 0; i < len(w.tanks); i++ {
		a := w.tanks[i]
		if !a.Alive() {
			continue
		}
		for j := i + 1; j < len(w.tanks); j++ {
			b := w.tanks[j]
			if !b.Alive() {
				continue
			}
			infoA, infoB := physics.Resolve(a.Context(), b.Context(), w.minResolve)
			a.ApplyResolve(infoA)
			b.ApplyResolve(infoB)
		}
	}

	for _, t := range w.tanks {
		if !t.Alive() {
			continue
		}
		for _, o := range w.obstacles {
			infoT, _ := physics.Resolve(t.Context(), o.Context(), w.minResolve)
			t.ApplyResolve(infoT)
		}
	}

	for _, b := range active {
		if b.Expired() {
			continue
		}
		w.bulletAgainstTanks(b)
		if !b.Expired() {
			w.bulletAgainstObstacles(b)
		}
	}

	for _, t := range w.tanks {
		if !t.Alive() {
			continue
		}
		w.tankAgainstItems(t)
	}
}

func (w *World) bulletAgainstTanks(b *Bullet) {
	for _, t := range w.tanks {
		if !t.Alive() || t.UID == b.OwnerUID || b.HasHit(t.UID) {
			continue
		}
		if !physics.IsCollidingHorizontal(b.Box(), t.Context().Box()) {
			continue
		}
		b.MarkHit(t.UID)
		w.damageTank(t, b.Spec.Damage, b)
		w.impact(b)
		if b.Expired() {
			return
		}
	}
}

func (w *World) bulletAgainstObstacles(b *Bullet) {
	// Destroyed obstacles are removed from w.obstacles mid-loop; iterate a
	// snapshot.
	obstacles := append([]*Obstacle(nil), w.obstacles...)
	for _, o := range obstacles {
		if b.HasHit(o.UID) {
			continue
		}
		if !physics.IsCollidingHorizontal(b.Box(), o.Context().Box()) {
			continue
		}
		b.MarkHit(o.UID)
		w.damageObstacle(o, b.Spec.Damage, b)
		w.impact(b)
		if b.Expired() {
			return
		}
	}
}

func (w *World) tankAgainstItems(t *Tank) {
	for i := 0; i < len(w.items); i++ {
		it := w.items[i]
		if !physics.IsCollidingHorizontal(t.Context().Box(), it.Box()) {
			continue
		}
		it.Apply(t)
		w.ItemPickedUp.Invoke(PickupEvent{Tank: t, Item: it})
		w.removeItem(it)
		i--
	}
}

// impact applies the per-kind consequence of a bullet connecting with
// something.
func (w *World) impact(b *Bullet) {
	switch kind := b.Spec.Kind.(type) {
	case Explosive:
		w.explode(b, kind)
		b.MarkSpent()
	case Penetration:
		if !b.RecordPierce(kind.MaxPierce) {
			b.MarkSpent()
		}
	case Homing:
		b.MarkSpent()
	default:
		b.MarkSpent()
	}
}

// explode deals falloff damage in the blast circle around the bullet's
// planned position. Obstacles come from the circle query over static
// contexts; tanks are tested directly.
func (w *World) explode(b *Bullet, kind Explosive) {
	center := b.PlannedPosition()

	for _, t := range w.tanks {
		if !t.Alive() || b.HasHit(t.UID) {
			continue
		}
		overlap := physics.CircleOverlap(center, kind.BlastRadius, t.Context().Box())
		if overlap <= 0 {
			continue
		}
		b.MarkHit(t.UID)
		w.damageTank(t, blastDamage(b.Spec.Damage, overlap, kind.BlastRadius), b)
	}

	w.blastScratch = physics.CollectCircleOverlaps(center, kind.BlastRadius, w.obstacleCtxs, w.blastScratch)
	for _, ctx := range w.blastScratch {
		o := w.byCtx[ctx]
		if o == nil || b.HasHit(o.UID) {
			continue
		}
		overlap := physics.CircleOverlap(center, kind.BlastRadius, ctx.Box())
		b.MarkHit(o.UID)
		w.damageObstacle(o, blastDamage(b.Spec.Damage, overlap, kind.BlastRadius), b)
	}
}

// blastDamage scales damage linearly with how deep the target sits in the
// blast circle.
func blastDamage(base, overlap, radius float32) float32 {
	if radius <= 0 {
		return base
	}
	frac := overlap / radius
	if frac > 1 {
		frac = 1
	}
	return base * frac
}

func (w *World) damageTank(t *Tank, amount float32, b *Bullet) {
	w.TankHit.Invoke(HitEvent{Bullet: b, Target: t, Damage: amount})
	if t.ApplyDamage(amount) {
		w.log.Info("tank destroyed",
			zap.Uint64("tank", t.UID),
			zap.Uint64("by", b.OwnerUID),
		)
		w.TankDestroyed.Invoke(t)
	}
}

func (w *World) damageObstacle(o *Obstacle, amount float32, b *Bullet) {
	w.ObstacleHit.Invoke(ObstacleHitEvent{Bullet: b, Obstacle: o, Damage: amount})
	if o.ApplyDamage(amount) {
		w.ObstacleDestroyed.Invoke(o)
		w.removeObstacle(o)
	}
}
