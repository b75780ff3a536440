package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best runs and totals for a mode (classic by default).

Examples:
  shooter scores
  shooter scores endless --limit 20
  shooter scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all saved scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	gameID, ok := resolveGameID(mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available modes.")
		os.Exit(1)
	}

	info, _ := registry.Info(gameID)
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shooter play %s' to set the first high score!\n", modeArg(gameID))
		return
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-4s  %-6s  %s\n", "Rank", "Player", "Score", "Kills", "Wave", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-4s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-4d  %-6s  %s\n",
			i+1, truncate(entry.Player, 12), entry.Score, entry.Kills, entry.Wave, resultLabel(entry.Won), dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Wins: %d   Best wave: %d   Avg: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestWave, stats.AvgScore)
}

// modeArg returns the play argument for a game ID.
func modeArg(gameID string) string {
	if gameID == shooter.IDEndless {
		return string(shooter.ModeEndless)
	}
	return string(shooter.ModeClassic)
}

func resultLabel(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
