package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Left:       -200,
			Top:        200,
			Right:      200,
			Bottom:     -200,
			Margin:     15,
			StarBorder: 150,
		},
		Session: SessionConfig{
			Lives: 5,
		},
		Controls: ControlsConfig{
			HoldTicks: 6,
		},
		Display: DisplayConfig{
			TickRate:    40,
			WindowScale: 2,
		},
	}
}

// DefaultAsteroidsYAML returns the embedded default configuration file.
func DefaultAsteroidsYAML() []byte {
	return defaultAsteroidsYAML
}
