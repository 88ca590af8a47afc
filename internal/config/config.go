// Package config provides YAML-based configuration loading and difficulty
// presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for an asteroids session.
type AsteroidsConfig struct {
	World    WorldConfig    `yaml:"world"`
	Session  SessionConfig  `yaml:"session"`
	Controls ControlsConfig `yaml:"controls"`
	Display  DisplayConfig  `yaml:"display"`
}

// WorldConfig defines the visible field in world units (Y grows upward)
// and the extra border objects may drift into before wrapping.
type WorldConfig struct {
	Left       float64 `yaml:"left"`
	Top        float64 `yaml:"top"`
	Right      float64 `yaml:"right"`
	Bottom     float64 `yaml:"bottom"`
	Margin     float64 `yaml:"margin"`      // Off-screen wrap border
	StarBorder float64 `yaml:"star_border"` // Extra border for shooting stars
}

// SessionConfig defines per-game rules.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// ControlsConfig tunes terminal input.
type ControlsConfig struct {
	// HoldTicks is how many frames a key counts as held after its last
	// key event. Terminals only report presses and auto-repeat.
	HoldTicks int `yaml:"hold_ticks"`
}

// DisplayConfig tunes the front ends.
type DisplayConfig struct {
	TickRate    int `yaml:"tick_rate"`    // Frames per second
	WindowScale int `yaml:"window_scale"` // GUI pixels per world unit
}

// Validate reports configuration that cannot produce a playable session.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	if c.World.Right <= c.World.Left {
		errs = append(errs, fmt.Errorf("world: right (%v) must be greater than left (%v)", c.World.Right, c.World.Left))
	}
	if c.World.Top <= c.World.Bottom {
		errs = append(errs, fmt.Errorf("world: top (%v) must be greater than bottom (%v)", c.World.Top, c.World.Bottom))
	}
	if c.World.Margin < 0 || c.World.StarBorder < 0 {
		errs = append(errs, errors.New("world: margin and star_border must not be negative"))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, fmt.Errorf("session: lives must be positive, got %d", c.Session.Lives))
	}
	if c.Controls.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("controls: hold_ticks must not be negative, got %d", c.Controls.HoldTicks))
	}
	if c.Display.TickRate < 0 || c.Display.WindowScale < 0 {
		errs = append(errs, errors.New("display: tick_rate and window_scale must not be negative"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// LivesForPreset returns the starting lives for a difficulty preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 3
	default:
		return 5
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Session.Lives = LivesForPreset(preset)
}
