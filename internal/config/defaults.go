package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// ClassicLayout is the built-in 20x20 maze.
var ClassicLayout = []string{
	"####################",
	"#........##........#",
	"#.##.###.##.###.##.#",
	"#..................#",
	"#.##.#.######.#.##.#",
	"#....#...##...#....#",
	"####.###.##.###.####",
	"####.#........#.####",
	"####.#.##  ##.#.####",
	"#......#    #......#",
	"####.#.######.#.####",
	"####.#........#.####",
	"####.#.######.#.####",
	"#........##........#",
	"#.##.###.##.###.##.#",
	"#..#............#..#",
	"##.#.#.######.#.#.##",
	"#....#...##...#....#",
	"#.######.##.######.#",
	"####################",
}

// DefaultPacmanConfig returns the default configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Maze: MazeConfig{
			TileSize:     30,
			OffsetX:      100,
			OffsetY:      0,
			PowerPellets: 4,
			Layout:       append([]string(nil), ClassicLayout...),
		},
		Agent: AgentConfig{
			Spawn:      CellPos{Row: 1, Col: 1},
			Speed:      1.5,
			Radius:     13, // tile_size/2 - 2
			PowerScale: 1.5,
		},
		Adversaries: AdversaryConfig{
			Speed:            1.0,
			Radius:           13,
			DecisionInterval: 60,
			RandomChance:     0.5,
			HomeThreshold:    5,
			ReturnFactor:     2,
			Spawns: []SpawnConfig{
				{Name: "blinky", Row: 9, Col: 8, Color: "red"},
				{Name: "pinky", Row: 9, Col: 9, Color: "pink"},
				{Name: "inky", Row: 9, Col: 10, Color: "cyan"},
				{Name: "clyde", Row: 9, Col: 11, Color: "orange"},
			},
		},
		Power: PowerConfig{
			DurationTicks: 600, // 10 seconds at 60fps
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Capture:     200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "pellets",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPacmanYAML
}
