package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/gui"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var flagGUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal, or in a window with --gui.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Down/S           - Brake
  Space            - Fire
  X                - Rapid fire (hold)
  Z                - Shockwave (every 20 points)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  ?                - Toggle key help (terminal)

Difficulty options:
  easy   - 8 ships
  normal - 5 ships
  hard   - 3 ships

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --gui --seed 42
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := configure()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagGUI {
		asteroids.SetLogger(gameLogger(false))
		if flagFPS > 0 {
			cfg.Display.TickRate = flagFPS
		}
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return gui.Run(cfg, seed, store, logger)
	}

	asteroids.SetLogger(gameLogger(true))
	game, err := registry.Create(asteroids.ID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	return tui.Run(game, store, runtimeConfig(cfg), tui.Options{
		Player:    playerName(),
		HoldTicks: cfg.Controls.HoldTicks,
	})
}
