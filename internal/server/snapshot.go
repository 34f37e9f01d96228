package server

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"

	"tankarena/internal/game"
)

// Snapshot is the per-tick world state sent to every connected client.
type Snapshot struct {
	Frame     uint64          `json:"frame"`
	Tanks     []TankState     `json:"tanks"`
	Bullets   []BulletState   `json:"bullets,omitempty"`
	Obstacles []ObstacleState `json:"obstacles"`
	Items     []ItemState     `json:"items,omitempty"`
}

type TankState struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Pos     [3]float32 `json:"pos"`
	Heading float32    `json:"heading"`
	Health  float32    `json:"health"`
	Ammo    int        `json:"ammo"`
	Alive   bool       `json:"alive"`
}

type BulletState struct {
	UID     uint64     `json:"uid"`
	Kind    string     `json:"kind"`
	Pos     [3]float32 `json:"pos"`
	Heading float32    `json:"heading"`
}

type ObstacleState struct {
	UID       uint64     `json:"uid"`
	Pos       [3]float32 `json:"pos"`
	Heading   float32    `json:"heading"`
	Half      [3]float32 `json:"half"`
	HitPoints float32    `json:"hit_points"`
}

type ItemState struct {
	UID  uint64     `json:"uid"`
	Kind string     `json:"kind"`
	Pos  [3]float32 `json:"pos"`
}

// BuildSnapshot captures the world state. Must run on the tick goroutine.
func BuildSnapshot(w *game.World) Snapshot {
	snap := Snapshot{
		Frame:     w.Frame(),
		Tanks:     make([]TankState, 0, len(w.Tanks())),
		Obstacles: make([]ObstacleState, 0, len(w.Obstacles())),
	}
	for _, t := range w.Tanks() {
		snap.Tanks = append(snap.Tanks, TankState{
			ID:      t.NetID.String(),
			Name:    t.Name,
			Pos:     vec3Array(t.Transform.Position),
			Heading: t.Transform.Heading,
			Health:  t.Health,
			Ammo:    t.Ammo,
			Alive:   t.Alive(),
		})
	}
	for _, b := range w.ActiveBullets() {
		snap.Bullets = append(snap.Bullets, BulletState{
			UID:     b.UID,
			Kind:    b.Spec.Kind.String(),
			Pos:     vec3Array(b.Transform.Position),
			Heading: b.Transform.Heading,
		})
	}
	for _, o := range w.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleState{
			UID:       o.UID,
			Pos:       vec3Array(o.Transform.Position),
			Heading:   o.Transform.Heading,
			Half:      vec3Array(o.HalfExtent),
			HitPoints: o.HitPoints,
		})
	}
	for _, it := range w.Items() {
		snap.Items = append(snap.Items, ItemState{
			UID:  it.UID,
			Kind: it.Kind.String(),
			Pos:  vec3Array(it.Transform.Position),
		})
	}
	return snap
}

// Encode renders the snapshot as a JSON message.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// StateHash digests the snapshot with the frame counter zeroed, so two
// ticks in which nothing moved hash identically.
func (s Snapshot) StateHash() (uint64, error) {
	probe := s
	probe.Frame = 0
	data, err := json.Marshal(probe)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

func vec3Array(v [3]float32) [3]float32 {
	return v
}
