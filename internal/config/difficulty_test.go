package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultPacmanConfig().Difficulty)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 1.0, d.Speed(1.0, 150, 10000))
}

func TestDifficultyPelletProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "pellets", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	}
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(50, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(500, 0), 1e-9, "level is clamped")

	assert.InDelta(t, 1.0, d.Speed(1.0, 0, 0), 1e-9)
	assert.InDelta(t, 1.5, d.Speed(1.0, 100, 0), 1e-9)
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.5, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 300), 1e-9)
	assert.InDelta(t, 2.0, d.Speed(1.0, 0, 600), 1e-9)
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "pellets", MaxAt: 0},
	})
	assert.InDelta(t, 1.0, d.Level(1, 0), 1e-9)
}
