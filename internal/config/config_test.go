package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30, cfg.Sim.TickRate)
	assert.InDelta(t, 8.0, float64(cfg.Tank.MaxSpeed), 1e-6)
}

func TestLoadPartialOverride(t *testing.T) {
	in := strings.NewReader(`
server:
  addr: ":9000"
tank:
  max_speed: 12
`)
	cfg, err := Load(in)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.InDelta(t, 12.0, float64(cfg.Tank.MaxSpeed), 1e-6)

	// Unnamed fields keep their defaults.
	assert.Equal(t, 30, cfg.Sim.TickRate)
	assert.InDelta(t, 100.0, float64(cfg.Tank.Health), 1e-6)
	assert.InDelta(t, 5.0, float64(cfg.Bullets.Explosive.BlastRadius), 1e-6)
}

func TestLoadEmptyUsesDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadArenaLayout(t *testing.T) {
	in := strings.NewReader(`
arena:
  width: 200
  obstacles:
    - {x: 10, z: -5, half_width: 3, half_depth: 1, hit_points: 40}
  items:
    - {x: 0, z: 0, kind: ammo, amount: 15}
`)
	cfg, err := Load(in)
	require.NoError(t, err)

	require.Len(t, cfg.Arena.Obstacles, 1)
	assert.InDelta(t, -5.0, float64(cfg.Arena.Obstacles[0].Z), 1e-6)
	require.Len(t, cfg.Arena.Items, 1)
	assert.Equal(t, "ammo", cfg.Arena.Items[0].Kind)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero tick rate", "sim:\n  tick_rate: 0\n"},
		{"negative pool", "sim:\n  bullet_pool_size: -1\n"},
		{"zero arena width", "arena:\n  width: 0\n"},
		{"zero tank speed", "tank:\n  max_speed: 0\n"},
		{"bad item kind", "arena:\n  items:\n    - {kind: gold}\n"},
		{"negative min resolve", "collision:\n  min_resolve_distance: -0.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("tank: [not a map"))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/arena.yaml")
	assert.Error(t, err)
}
