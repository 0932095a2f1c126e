package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "Validate and describe the active maze",
	Long: `Load the configuration the same way 'play' does, build a round and
print the maze with its pellet counts. Exits non-zero if the maze or the
spawn points are invalid.

Examples:
  pacman mazes
  pacman mazes --maze ./mazes/small.yaml
  pacman mazes --seed 42`,
	Args: cobra.NoArgs,
	RunE: runMazes,
}

func init() {
	mazesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	mazesCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to a maze YAML file")
}

func runMazes(_ *cobra.Command, _ []string) error {
	applyGameFlags()
	cfg, err := pacman.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl, err := pacman.NewController(cfg, seed)
	if err != nil {
		return fmt.Errorf("maze: %w", err)
	}

	grid := ctrl.Grid()
	power := 0
	for _, row := range grid.Cells() {
		for _, c := range row {
			if c == pacman.CellPowerPellet {
				power++
			}
		}
	}

	fmt.Print(ctrl.Snapshot().String())
	fmt.Println()
	fmt.Printf("Size:         %d x %d cells\n", grid.Rows(), grid.Cols())
	w, h := pacman.ScreenSize(grid.Rows(), grid.Cols())
	fmt.Printf("Terminal:     at least %d x %d\n", w, h)
	fmt.Printf("Collectibles: %d (%d power)\n", grid.Total(), power)
	fmt.Printf("Adversaries:  %d\n", len(ctrl.Adversaries()))
	for _, a := range ctrl.Adversaries() {
		row, col := grid.Geometry().CellOf(a.Spawn())
		fmt.Printf("  %-8s at (%d, %d)\n", a.Name(), row, col)
	}
	fmt.Printf("Seed:         %d\n", ctrl.Seed())
	return nil
}
