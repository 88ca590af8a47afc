package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press Esc to return to the menu.

Examples:
  asteroids menu
  asteroids menu --difficulty easy
  asteroids menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := configure()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	asteroids.SetLogger(gameLogger(true))
	return tui.RunSession(asteroids.ID, store, runtimeConfig(cfg), tui.Options{
		Player:    playerName(),
		HoldTicks: cfg.Controls.HoldTicks,
	})
}
