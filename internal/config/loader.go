package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Files only need to hold the keys they override.
func LoadPacman(customPath string) (PacmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pacman.yaml")); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg PacmanConfig
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseOverDefaults decodes data on top of the built-in defaults.
// A layout given in the file replaces the default one entirely.
func parseOverDefaults(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	cfg.Maze.Layout = nil
	cfg.Adversaries.Spawns = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, err
	}

	def := DefaultPacmanConfig()
	if len(cfg.Maze.Layout) == 0 {
		cfg.Maze.Layout = def.Maze.Layout
	}
	if cfg.Adversaries.Spawns == nil {
		cfg.Adversaries.Spawns = def.Adversaries.Spawns
	}
	return cfg, nil
}

// MazeFile is the on-disk format of a standalone maze.
type MazeFile struct {
	Name         string        `yaml:"name"`
	Layout       []string      `yaml:"layout"`
	PowerPellets *int          `yaml:"power_pellets,omitempty"`
	Agent        *CellPos      `yaml:"agent,omitempty"`
	Spawns       []SpawnConfig `yaml:"spawns,omitempty"`
}

// LoadMaze reads a maze file.
func LoadMaze(path string) (MazeFile, error) {
	var m MazeFile
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("failed to read maze %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse maze %s: %w", path, err)
	}
	if len(m.Layout) == 0 {
		return m, fmt.Errorf("maze %s has no layout: %w", path, ErrInvalidConfig)
	}
	return m, nil
}

// ApplyMaze replaces the layout (and optional spawns) of cfg with m.
func ApplyMaze(cfg *PacmanConfig, m MazeFile) {
	cfg.Maze.Layout = append([]string(nil), m.Layout...)
	if m.PowerPellets != nil {
		cfg.Maze.PowerPellets = *m.PowerPellets
	}
	if m.Agent != nil {
		cfg.Agent.Spawn = *m.Agent
	}
	if m.Spawns != nil {
		cfg.Adversaries.Spawns = m.Spawns
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Shorter power windows on harder settings
	switch preset {
	case DifficultyEasy:
		cfg.Power.DurationTicks = 900
	case DifficultyHard:
		cfg.Power.DurationTicks = 420
	}
}
