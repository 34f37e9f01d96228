package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"tankarena/internal/config"
	"tankarena/internal/engine"
	"tankarena/internal/physics"
)

// HitEvent fires when a bullet damages a tank.
type HitEvent struct {
	Bullet *Bullet
	Target *Tank
	Damage float32
}

// ObstacleHitEvent fires when a bullet damages an obstacle.
type ObstacleHitEvent struct {
	Bullet   *Bullet
	Obstacle *Obstacle
	Damage   float32
}

// PickupEvent fires when a tank drives over an item.
type PickupEvent struct {
	Tank *Tank
	Item *Item
}

// World owns the full simulation state and advances it one fixed timestep
// at a time. All mutation happens inside Step; the world is not safe for
// concurrent use and is meant to be driven from a single tick loop.
type World struct {
	cfg *config.Config
	log *zap.Logger

	scene *engine.Scene
	arena physics.AABB

	tanks     []*Tank
	obstacles []*Obstacle
	items     []*Item
	pool      *BulletPool

	// obstacleCtxs mirrors obstacles for circle queries; byCtx maps a
	// context back to its obstacle.
	obstacleCtxs []*physics.Context
	byCtx        map[*physics.Context]*Obstacle

	bullets      []*Bullet // scratch, refreshed each frame
	blastScratch []*physics.Context

	frame        uint64
	obstacleSeq  int
	itemSeq      int
	bulletRadius float32
	minResolve   float32

	TankHit           engine.Event[HitEvent]
	TankDestroyed     engine.Event[*Tank]
	ObstacleHit       engine.Event[ObstacleHitEvent]
	ObstacleDestroyed engine.Event[*Obstacle]
	ItemPickedUp      engine.Event[PickupEvent]
}

func NewWorld(cfg *config.Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		cfg:   cfg,
		log:   log,
		scene: engine.NewScene("arena"),
		arena: physics.NewAABBFromCenter(
			mgl32.Vec3{},
			mgl32.Vec3{cfg.Arena.Width, 100, cfg.Arena.Depth},
		),
		pool:         NewBulletPool(cfg.Sim.BulletPoolSize, bulletHalfExtent(cfg.Bullets.Radius)),
		byCtx:        make(map[*physics.Context]*Obstacle),
		bulletRadius: cfg.Bullets.Radius,
		minResolve:   cfg.Collision.MinResolveDistance,
	}
	for _, spec := range cfg.Arena.Obstacles {
		w.AddObstacle(
			mgl32.Vec3{spec.X, 0, spec.Z},
			spec.Heading,
			mgl32.Vec3{spec.HalfWidth, 2, spec.HalfDepth},
			spec.HitPoints,
		)
	}
	for _, spec := range cfg.Arena.Items {
		kind := ItemRepair
		if spec.Kind == "ammo" {
			kind = ItemAmmo
		}
		w.AddItem(mgl32.Vec3{spec.X, 0, spec.Z}, kind, spec.Amount)
	}
	return w
}

func bulletHalfExtent(radius float32) mgl32.Vec3 {
	return mgl32.Vec3{radius, radius, radius}
}

// Scene returns the entity registry.
func (w *World) Scene() *engine.Scene { return w.scene }

// Arena returns the keep-in bounds.
func (w *World) Arena() physics.AABB { return w.arena }

// Frame returns the number of completed steps.
func (w *World) Frame() uint64 { return w.frame }

func (w *World) Tanks() []*Tank         { return w.tanks }
func (w *World) Obstacles() []*Obstacle { return w.obstacles }
func (w *World) Items() []*Item         { return w.items }

// ActiveBullets returns the bullets in flight as of the last step.
func (w *World) ActiveBullets() []*Bullet {
	return w.pool.CollectActive(w.bullets)
}

// SpawnTank adds a tank with the configured loadout at the given pose.
func (w *World) SpawnTank(name string, pos mgl32.Vec3, heading float32, loadout BulletSpec) *Tank {
	t := NewTank(name, pos, heading, w.cfg.Tank)
	t.Loadout = loadout
	w.tanks = append(w.tanks, t)
	w.scene.AddEntity(&t.Entity)
	w.log.Info("tank spawned",
		zap.String("name", name),
		zap.Uint64("uid", t.UID),
		zap.String("loadout", loadout.Kind.String()),
	)
	return t
}

// RemoveTank unregisters a tank from the world.
func (w *World) RemoveTank(t *Tank) {
	for i, cur := range w.tanks {
		if cur == t {
			w.tanks = append(w.tanks[:i], w.tanks[i+1:]...)
			w.scene.RemoveEntity(&t.Entity)
			return
		}
	}
}

func (w *World) AddObstacle(pos mgl32.Vec3, heading float32, halfExtent mgl32.Vec3, hitPoints float32) *Obstacle {
	w.obstacleSeq++
	o := NewObstacle(fmt.Sprintf("obstacle_%d", w.obstacleSeq), pos, heading, halfExtent, hitPoints)
	w.obstacles = append(w.obstacles, o)
	w.obstacleCtxs = append(w.obstacleCtxs, o.Context())
	w.byCtx[o.Context()] = o
	w.scene.AddEntity(&o.Entity)
	return o
}

func (w *World) removeObstacle(o *Obstacle) {
	for i, cur := range w.obstacles {
		if cur == o {
			w.obstacles = append(w.obstacles[:i], w.obstacles[i+1:]...)
			break
		}
	}
	for i, ctx := range w.obstacleCtxs {
		if ctx == o.Context() {
			w.obstacleCtxs = append(w.obstacleCtxs[:i], w.obstacleCtxs[i+1:]...)
			break
		}
	}
	delete(w.byCtx, o.Context())
	w.scene.RemoveEntity(&o.Entity)
}

func (w *World) AddItem(pos mgl32.Vec3, kind ItemKind, amount float32) *Item {
	w.itemSeq++
	it := NewItem(fmt.Sprintf("item_%d", w.itemSeq), pos, kind, amount)
	w.items = append(w.items, it)
	w.scene.AddEntity(&it.Entity)
	return it
}

func (w *World) removeItem(it *Item) {
	for i, cur := range w.items {
		if cur == it {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	w.scene.RemoveEntity(&it.Entity)
}

// LoadoutFor builds a BulletSpec from the configured bullet tables.
func (w *World) LoadoutFor(kind string) (BulletSpec, error) {
	switch kind {
	case "explosive":
		c := w.cfg.Bullets.Explosive
		return BulletSpec{Kind: Explosive{BlastRadius: c.BlastRadius}, Damage: c.Damage, Speed: c.Speed, TTL: c.TTL}, nil
	case "penetration":
		c := w.cfg.Bullets.Penetration
		return BulletSpec{Kind: Penetration{MaxPierce: c.MaxPierce}, Damage: c.Damage, Speed: c.Speed, TTL: c.TTL}, nil
	case "homing":
		c := w.cfg.Bullets.Homing
		return BulletSpec{Kind: Homing{TurnRate: c.TurnRate, LockRange: c.LockRange}, Damage: c.Damage, Speed: c.Speed, TTL: c.TTL}, nil
	}
	return BulletSpec{}, fmt.Errorf("unknown bullet kind %q", kind)
}

func (w *World) tankByUID(uid uint64) *Tank {
	if uid == 0 {
		return nil
	}
	for _, t := range w.tanks {
		if t.UID == uid {
			return t
		}
	}
	return nil
}

// Step advances the simulation one fixed timestep. The frame pipeline is:
// plan tank and bullet poses from input and last frame's locks, fire
// pending shots, run the collision pass (which adjusts planned poses and
// accumulates locks), finalize locks, commit poses, then despawn expired
// bullets.
func (w *World) Step(dt float32) {
	for _, t := range w.tanks {
		if !t.Alive() {
			continue
		}
		t.PlanMove(dt, w.arena)
		if t.WantsFire() {
			w.fire(t)
		}
	}

	active := w.pool.CollectActive(w.bullets)
	w.bullets = active
	for _, b := range active {
		b.PlanMove(dt, w)
	}

	w.collisionPass(active)

	for _, t := range w.tanks {
		t.Context().FinalizeLock()
	}
	for _, t := range w.tanks {
		if t.Alive() {
			t.CommitMove()
		}
	}
	for _, b := range active {
		b.CommitMove()
	}

	for _, b := range active {
		if b.Expired() {
			w.scene.RemoveEntity(&b.Entity)
			w.pool.Release(b)
		}
	}
	w.frame++
}

func (w *World) fire(t *Tank) {
	pose := t.MuzzlePose(w.bulletRadius)
	b, ok := w.pool.Acquire(t.Loadout, pose, t.UID)
	if !ok {
		w.log.Warn("bullet pool exhausted", zap.Uint64("tank", t.UID))
		return
	}
	t.ConsumeShot(w.cfg.Tank.Cooldown)
	w.scene.AddEntity(&b.Entity)
}
