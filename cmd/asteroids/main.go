// asteroids is a 2D asteroids game for the terminal, a desktop window or
// remote play over SSH.
//
// Usage:
//
//	asteroids play           - Play in the terminal (or --gui for a window)
//	asteroids menu           - Title menu with high scores
//	asteroids serve          - Start SSH server for remote play
//	asteroids scores         - Show the best runs
//	asteroids sim            - Run a headless session and print snapshots
//	asteroids config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 40)
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--db <path>          - Set database path (default: ~/.asteroids/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file (terminal front ends log nowhere else)
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play and menu
	flagConfig     string
	flagDifficulty string
)

// logger is the root logger, set up before any command runs.
var logger *log.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - shoot rocks in your terminal",
	Long: `Asteroids is a 2D space shooter: steer the ship, split the rocks,
and charge the shockwave for every 20 points.

Available commands:
  play     - Play a game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Run a headless session
  config   - Print the default configuration

Examples:
  asteroids play
  asteroids play --gui --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids sim --frames 2000 --autopilot --format yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the root logger.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
	return nil
}

// gameLogger returns the logger for session events. Terminal front ends
// own the screen, so they only log when a log file was given.
func gameLogger(terminal bool) *log.Logger {
	if terminal && flagLogFile == "" {
		return nil
	}
	return logger
}

// configure applies --config and --difficulty and loads the result.
func configure() (config.AsteroidsConfig, error) {
	asteroids.SetConfigPath(flagConfig)
	if err := asteroids.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.AsteroidsConfig{}, err
	}
	return asteroids.LoadConfig()
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.AsteroidsConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	tickRate := cfg.Display.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// playerName labels locally saved runs with the login name.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
