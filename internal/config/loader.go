package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial YAML only overrides the keys it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseShooter(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ShooterConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "shooter.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or invalid files are skipped.
func tryLoad(path string) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, false
	}
	cfg, err := parseShooter(data)
	if err != nil || cfg.Validate() != nil {
		return ShooterConfig{}, false
	}
	return cfg, true
}

func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = InitialTierForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.MaxEnemies = 3
		cfg.Spawner.IntervalSeconds = 3
		cfg.Difficulty.IntervalSeconds = 90
	case DifficultyHard:
		cfg.Spawner.MaxEnemies = 8
		cfg.Spawner.IntervalSeconds = 1
		cfg.Difficulty.IntervalSeconds = 45
	}
}
