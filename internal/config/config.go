// Package config holds project-wide constants and the user
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user configuration. Every field has a working default;
// an absent or empty config file is not an error.
type Config struct {
	// TapeSize is the interpreter's initial tape length.
	TapeSize int `yaml:"tape_size"`

	// PointerPolicy is what '<' does at cell zero: clamp, error or
	// wrap.
	PointerPolicy string `yaml:"pointer_policy"`

	// EOFPolicy is what ',' does on exhausted input: zero or nochange.
	EOFPolicy string `yaml:"eof_policy"`

	// Throttle is the debugger's initial instructions-per-redraw rate.
	Throttle int `yaml:"throttle"`

	History HistoryConfig `yaml:"history"`
}

// HistoryConfig configures the run-history store.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TapeSize:      DefaultTapeSize,
		PointerPolicy: "clamp",
		EOFPolicy:     "zero",
		Throttle:      1,
	}
}

// HistoryPath returns the configured history database path, falling
// back to the per-user default.
func (c Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return HistoryFileName
	}
	return filepath.Join(home, HistoryFileName)
}

// Load reads the configuration. With an explicit path, the file must
// exist and parse. With an empty path, the working directory and the
// home directory are searched for ConfigFileName, and defaults are
// returned when neither has one.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, ok := findConfigFile()
		if !ok {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.TapeSize <= 0 {
		cfg.TapeSize = DefaultTapeSize
	}
	if cfg.Throttle < 1 {
		cfg.Throttle = 1
	}
	return cfg, nil
}

func findConfigFile() (string, bool) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	candidate := filepath.Join(home, ConfigFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}
	return "", false
}
