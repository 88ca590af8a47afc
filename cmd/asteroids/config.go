package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.asteroids/configs/asteroids.yaml or pass it with --config to override
the defaults.

Examples:
  asteroids config > ~/.asteroids/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultAsteroidsYAML())
		return err
	},
}
