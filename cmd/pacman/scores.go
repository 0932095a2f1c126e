package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores and round statistics.

Examples:
  pacman scores
  pacman scores --limit 25
  pacman scores --tui
  pacman scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored round")
}

func runScores(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pacman play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "Rank", "Score", "Result", "Pellets", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "----", "-----", "------", "-------", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %-9s  %s\n",
			i+1, r.Score, r.Status, fmt.Sprintf("%d/%d", r.Pellets, r.Total),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Won: %d  Win rate: %.0f%%\n",
			stats.HighScore, stats.Rounds, stats.Wins, stats.WinRate()*100)
	}
	return nil
}
