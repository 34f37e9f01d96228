// Package config holds the arena server's tunable parameters, loadable from
// YAML with sane defaults for every field.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Sim       Sim       `yaml:"sim"`
	Arena     Arena     `yaml:"arena"`
	Tank      Tank      `yaml:"tank"`
	Bullets   Bullets   `yaml:"bullets"`
	Collision Collision `yaml:"collision"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Sim struct {
	TickRate       int `yaml:"tick_rate"`
	BulletPoolSize int `yaml:"bullet_pool_size"`
}

type Arena struct {
	Width     float32        `yaml:"width"`
	Depth     float32        `yaml:"depth"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
	Items     []ItemSpec     `yaml:"items"`
}

// ObstacleSpec places one static obstacle. Heading is in radians. Hit
// points of zero mean indestructible.
type ObstacleSpec struct {
	X         float32 `yaml:"x"`
	Z         float32 `yaml:"z"`
	Heading   float32 `yaml:"heading"`
	HalfWidth float32 `yaml:"half_width"`
	HalfDepth float32 `yaml:"half_depth"`
	HitPoints float32 `yaml:"hit_points"`
}

type ItemSpec struct {
	X      float32 `yaml:"x"`
	Z      float32 `yaml:"z"`
	Kind   string  `yaml:"kind"` // "repair" or "ammo"
	Amount float32 `yaml:"amount"`
}

type Tank struct {
	MaxSpeed   float32 `yaml:"max_speed"`
	TurnRate   float32 `yaml:"turn_rate"`
	Health     float32 `yaml:"health"`
	Ammo       int     `yaml:"ammo"`
	HalfWidth  float32 `yaml:"half_width"`
	HalfHeight float32 `yaml:"half_height"`
	HalfDepth  float32 `yaml:"half_depth"`
	Cooldown   float32 `yaml:"cooldown"`
}

type Bullets struct {
	Radius      float32     `yaml:"radius"`
	Explosive   Explosive   `yaml:"explosive"`
	Penetration Penetration `yaml:"penetration"`
	Homing      Homing      `yaml:"homing"`
}

type Explosive struct {
	Damage      float32 `yaml:"damage"`
	Speed       float32 `yaml:"speed"`
	TTL         float32 `yaml:"ttl"`
	BlastRadius float32 `yaml:"blast_radius"`
}

type Penetration struct {
	Damage    float32 `yaml:"damage"`
	Speed     float32 `yaml:"speed"`
	TTL       float32 `yaml:"ttl"`
	MaxPierce int     `yaml:"max_pierce"`
}

type Homing struct {
	Damage    float32 `yaml:"damage"`
	Speed     float32 `yaml:"speed"`
	TTL       float32 `yaml:"ttl"`
	TurnRate  float32 `yaml:"turn_rate"`
	LockRange float32 `yaml:"lock_range"`
}

type Collision struct {
	MinResolveDistance float32 `yaml:"min_resolve_distance"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: Server{Addr: ":8080"},
		Sim:    Sim{TickRate: 30, BulletPoolSize: 256},
		Arena:  Arena{Width: 120, Depth: 120},
		Tank: Tank{
			MaxSpeed:   8,
			TurnRate:   2.5,
			Health:     100,
			Ammo:       40,
			HalfWidth:  1.2,
			HalfHeight: 0.8,
			HalfDepth:  1.8,
			Cooldown:   0.5,
		},
		Bullets: Bullets{
			Radius:      0.25,
			Explosive:   Explosive{Damage: 35, Speed: 20, TTL: 4, BlastRadius: 5},
			Penetration: Penetration{Damage: 20, Speed: 30, TTL: 4, MaxPierce: 2},
			Homing:      Homing{Damage: 25, Speed: 15, TTL: 6, TurnRate: 2, LockRange: 40},
		},
		Collision: Collision{MinResolveDistance: physicsMinResolve},
	}
}

// Kept in sync with the collision subsystem's default.
const physicsMinResolve = 0.01

// Load decodes YAML over the defaults, so a partial file only overrides
// what it names.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a YAML config file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) Validate() error {
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	}
	if c.Sim.BulletPoolSize <= 0 {
		return fmt.Errorf("sim.bullet_pool_size must be positive, got %d", c.Sim.BulletPoolSize)
	}
	if c.Arena.Width <= 0 || c.Arena.Depth <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Depth)
	}
	if c.Tank.MaxSpeed <= 0 {
		return fmt.Errorf("tank.max_speed must be positive, got %g", c.Tank.MaxSpeed)
	}
	if c.Tank.Health <= 0 {
		return fmt.Errorf("tank.health must be positive, got %g", c.Tank.Health)
	}
	if c.Collision.MinResolveDistance < 0 {
		return fmt.Errorf("collision.min_resolve_distance must not be negative, got %g", c.Collision.MinResolveDistance)
	}
	for i, it := range c.Arena.Items {
		if it.Kind != "repair" && it.Kind != "ammo" {
			return fmt.Errorf("arena.items[%d]: unknown kind %q", i, it.Kind)
		}
	}
	return nil
}
