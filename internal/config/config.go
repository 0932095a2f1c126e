// Package config provides YAML-based game configuration loading and
// difficulty management for the maze game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PacmanConfig contains all configuration for the maze game.
type PacmanConfig struct {
	Maze        MazeConfig       `yaml:"maze"`
	Agent       AgentConfig      `yaml:"agent"`
	Adversaries AdversaryConfig  `yaml:"adversaries"`
	Power       PowerConfig      `yaml:"power"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// MazeConfig defines the grid geometry and layout.
type MazeConfig struct {
	TileSize     float64  `yaml:"tile_size"`
	OffsetX      float64  `yaml:"offset_x"`
	OffsetY      float64  `yaml:"offset_y"`
	PowerPellets int      `yaml:"power_pellets"` // Pellets promoted at construction
	Layout       []string `yaml:"layout"`
}

// CellPos addresses a maze cell.
type CellPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// AgentConfig defines the player-controlled agent.
type AgentConfig struct {
	Spawn      CellPos `yaml:"spawn"`
	Speed      float64 `yaml:"speed"`  // Pixels per tick
	Radius     float64 `yaml:"radius"` // Collision radius, never scaled
	PowerScale float64 `yaml:"power_scale"`
}

// AdversaryConfig defines the chasing adversaries.
type AdversaryConfig struct {
	Speed            float64       `yaml:"speed"`
	Radius           float64       `yaml:"radius"`
	DecisionInterval int           `yaml:"decision_interval"` // Ticks between direction decisions
	RandomChance     float64       `yaml:"random_chance"`     // Probability of a random decision
	HomeThreshold    float64       `yaml:"home_threshold"`    // Distance at which a returning adversary is home
	ReturnFactor     float64       `yaml:"return_factor"`     // Speed multiplier while returning home
	Spawns           []SpawnConfig `yaml:"spawns"`
}

// SpawnConfig places one adversary.
type SpawnConfig struct {
	Name  string `yaml:"name"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// PowerConfig defines the power mode window.
type PowerConfig struct {
	DurationTicks int `yaml:"duration_ticks"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Capture     int `yaml:"capture"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "pellets", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pellets/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to adversary speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed): %w", s, ErrInvalidConfig)
	}
}

// Validate checks value ranges that do not depend on the layout contents.
func (c PacmanConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Maze.TileSize > 0, "maze.tile_size must be positive, got %v", c.Maze.TileSize)
	check(len(c.Maze.Layout) > 0, "maze.layout is empty")
	check(c.Maze.PowerPellets >= 0, "maze.power_pellets must not be negative, got %d", c.Maze.PowerPellets)
	check(c.Agent.Speed > 0, "agent.speed must be positive, got %v", c.Agent.Speed)
	check(c.Agent.Radius > 0 && c.Agent.Radius < c.Maze.TileSize/2,
		"agent.radius must be in (0, tile_size/2), got %v", c.Agent.Radius)
	check(c.Agent.PowerScale > 0, "agent.power_scale must be positive, got %v", c.Agent.PowerScale)
	check(c.Adversaries.Speed > 0, "adversaries.speed must be positive, got %v", c.Adversaries.Speed)
	check(c.Adversaries.Radius > 0 && c.Adversaries.Radius < c.Maze.TileSize/2,
		"adversaries.radius must be in (0, tile_size/2), got %v", c.Adversaries.Radius)
	check(c.Adversaries.DecisionInterval > 0, "adversaries.decision_interval must be positive, got %d", c.Adversaries.DecisionInterval)
	check(c.Adversaries.RandomChance >= 0 && c.Adversaries.RandomChance <= 1,
		"adversaries.random_chance must be in [0, 1], got %v", c.Adversaries.RandomChance)
	check(c.Adversaries.HomeThreshold > 0, "adversaries.home_threshold must be positive, got %v", c.Adversaries.HomeThreshold)
	check(c.Adversaries.ReturnFactor > 0, "adversaries.return_factor must be positive, got %v", c.Adversaries.ReturnFactor)
	check(c.Power.DurationTicks > 0, "power.duration_ticks must be positive, got %d", c.Power.DurationTicks)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
