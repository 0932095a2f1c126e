// pacman is a maze chase game for the terminal.
//
// Usage:
//
//	pacman play              - Play a round
//	pacman serve             - Start SSH server for remote play
//	pacman scores            - Show high scores
//	pacman mazes             - Validate and describe the active maze
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/pacman.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - a maze chase in your terminal",
	Long: `Pacman is a terminal maze chase: eat every pellet, avoid the ghosts,
and turn the tables on them with a power pellet.

Available commands:
  play     - Play a round
  serve    - Start SSH server for remote play
  scores   - View high scores
  mazes    - Validate and describe the active maze

Examples:
  pacman play
  pacman play --difficulty hard --seed 42
  pacman serve --ssh :2222
  pacman scores --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pacman.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
}

// newLogger builds the structured logger shared by every command.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	}), nil
}

// logFile opens the play log. The terminal belongs to the game while a
// round is running, so play logs go to ~/.arcade/pacman.log instead.
func logFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "pacman.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// gameID is the only game this binary registers.
const gameID = pacman.GameID
