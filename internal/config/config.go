// Package config loads the optional YAML configuration file. A missing file
// yields the defaults; a malformed one is a hard error so typos do not
// silently fall back.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location when set.
const EnvConfigPath = "GANTTERM_CONFIG"

// Config holds user-tunable settings.
type Config struct {
	// Theme selects the color palette: "dark" or "light".
	Theme string `yaml:"theme"`
	// PaddingDays is the slack added around the task span when fitting the
	// domain window.
	PaddingDays int `yaml:"paddingDays"`
	// RowHeight is the PNG export row height in pixels.
	RowHeight int `yaml:"rowHeight"`
	// MilestoneKeywords overrides the built-in keyword list used to classify
	// milestone rows on import.
	MilestoneKeywords []string `yaml:"milestoneKeywords"`
	// ExportDir is where PNG and CSV exports land. Defaults to the working
	// directory.
	ExportDir string `yaml:"exportDir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:       "dark",
		PaddingDays: 2,
		RowHeight:   28,
		ExportDir:   ".",
	}
}

// Load reads the config file from $GANTTERM_CONFIG or the platform config
// directory (~/.config/gantterm/config.yaml on Linux).
func Load() (Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFile(path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, "gantterm", "config.yaml"))
}

// LoadFile reads a specific config file. A missing file returns the defaults
// without error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return Config{}, fmt.Errorf("config: unknown theme %q", cfg.Theme)
	}
	if cfg.PaddingDays < 0 {
		cfg.PaddingDays = 0
	}
	return cfg, nil
}
