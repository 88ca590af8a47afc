package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs with shots and hit ratio.

Examples:
  asteroids scores
  asteroids scores --limit 25
  asteroids scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		rc := runtimeConfig(config.DefaultAsteroidsConfig())
		return tui.RunScoreboard(store, asteroids.ID, rc.ScreenW, rc.ScreenH)
	}

	runs, err := store.TopRuns(asteroids.ID, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Asteroids")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'asteroids play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Shots", "Hit", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "-----", "---", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-6d  %-5s  %-12s  %s\n",
			i+1, r.Score, r.Shots, fmt.Sprintf("%.0f%%", r.HitRatio*100), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(asteroids.ID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d over %d runs (average %.1f)\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
