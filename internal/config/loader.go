package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory under $HOME holding configs and scores.
const HomeDir = ".asteroids"

const asteroidsFile = "asteroids.yaml"

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml ->
// ./configs/asteroids.yaml -> embedded default.
// Files only need to list the keys they change.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, validate(cfg, customPath)
	}

	// Try user config directory, then the working directory
	for _, path := range []string{userConfigPath(asteroidsFile), filepath.Join("configs", asteroidsFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultAsteroidsConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, validate(candidate, path)
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil
	}
	return cfg, nil
}

func validate(cfg AsteroidsConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDir, "configs", filename)
}
