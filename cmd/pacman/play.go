package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagConfig     string
	flagMaze       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Pacman.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  R           - Restart (after the round ends)
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Ghosts speed up slowly over the round
  normal - Ghosts speed up as pellets are eaten
  hard   - Ghosts speed up quickly and start faster
  fixed  - No progression, ghosts keep their base speed

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --maze ./mazes/small.yaml --seed 7
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to a maze YAML file (replaces the configured layout)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the CLI settings to the game package.
func applyGameFlags() {
	pacman.SetConfigPath(flagConfig)
	pacman.SetMazePath(flagMaze)
	pacman.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	// Fail before taking over the terminal
	if _, err := pacman.LoadConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var out io.Writer = io.Discard
	if f, err := logFile(); err == nil {
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "pacman")
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
