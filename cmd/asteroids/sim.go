package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagFrames    int
	flagFormat    string
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a front end and write its state to stdout.

Formats:
  text     - Short summary of the final frame
  yaml     - Final snapshot as YAML
  msgpack  - One MessagePack snapshot per frame

Examples:
  asteroids sim --frames 1000 --autopilot
  asteroids sim --frames 500 --seed 7 --format yaml
  asteroids sim --frames 2000 --autopilot --format msgpack > run.bin`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1000, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagFormat, "format", asteroids.FormatText, "Output format: text, yaml, msgpack")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Fly the ship with a scripted pilot")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := configure()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	run := asteroids.HeadlessRun{
		Config:    cfg,
		Seed:      seed,
		Frames:    flagFrames,
		Autopilot: flagAutopilot,
		Format:    flagFormat,
	}
	snap, err := run.Run(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Debug("simulation finished", "frames", snap.Frame, "score", snap.Score, "game_over", snap.GameOver)
	return nil
}
