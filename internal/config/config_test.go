package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PacmanConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultPacmanConfig(), fromYAML)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultPacmanConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
	}{
		{"zero tile", func(c *PacmanConfig) { c.Maze.TileSize = 0 }},
		{"empty layout", func(c *PacmanConfig) { c.Maze.Layout = nil }},
		{"negative power pellets", func(c *PacmanConfig) { c.Maze.PowerPellets = -1 }},
		{"agent radius too large", func(c *PacmanConfig) { c.Agent.Radius = 15 }},
		{"zero agent speed", func(c *PacmanConfig) { c.Agent.Speed = 0 }},
		{"zero decision interval", func(c *PacmanConfig) { c.Adversaries.DecisionInterval = 0 }},
		{"chance above one", func(c *PacmanConfig) { c.Adversaries.RandomChance = 1.5 }},
		{"zero power duration", func(c *PacmanConfig) { c.Power.DurationTicks = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadPacmanCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	data := []byte("power:\n  duration_ticks: 120\nagent:\n  speed: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadPacman(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Power.DurationTicks)
	assert.Equal(t, 2.0, cfg.Agent.Speed)
	// untouched keys keep their defaults
	assert.Equal(t, 200, cfg.Scoring.Capture)
	assert.Equal(t, ClassicLayout, cfg.Maze.Layout)
	assert.Len(t, cfg.Adversaries.Spawns, 4)
}

func TestLoadPacmanMissingFile(t *testing.T) {
	_, err := LoadPacman(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPacmanBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maze: [unclosed"), 0o600))

	_, err := LoadPacman(path)
	assert.Error(t, err)
}

func TestLoadMazeAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := []byte(`name: tiny
layout:
  - "#####"
  - "#..o#"
  - "#####"
power_pellets: 0
agent: { row: 1, col: 1 }
spawns: []
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, err := LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", m.Name)

	cfg := DefaultPacmanConfig()
	ApplyMaze(&cfg, m)
	assert.Len(t, cfg.Maze.Layout, 3)
	assert.Equal(t, 0, cfg.Maze.PowerPellets)
	assert.Equal(t, CellPos{Row: 1, Col: 1}, cfg.Agent.Spawn)
	assert.Empty(t, cfg.Adversaries.Spawns)
}

func TestLoadMazeWithoutLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\n"), 0o600))

	_, err := LoadMaze(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyPacmanPreset(t *testing.T) {
	cfg := DefaultPacmanConfig()
	ApplyPacmanPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 420, cfg.Power.DurationTicks)

	ApplyPacmanPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	before := DefaultPacmanConfig()
	after := before
	ApplyPacmanPreset(&after, "")
	assert.Equal(t, before.Difficulty, after.Difficulty)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		_, err := ParsePreset(s)
		assert.NoError(t, err, s)
	}
	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
