// Package config loads Hollowkeep configuration with the precedence
// defaults < user file (~/.hollowkeep/config.yaml) < project file
// (.hollowkeep.yaml) < HOLLOWKEEP_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hollowkeep/hollowkeep/internal/errors"
)

// UserConfigName is the per-user config file under ~/.hollowkeep/.
const UserConfigName = "config.yaml"

// ProjectConfigName is the per-directory config file.
const ProjectConfigName = ".hollowkeep.yaml"

// Config is the complete Hollowkeep configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig configures the game itself.
type GameConfig struct {
	// World is a path to a world file. Empty means the embedded
	// castle world.
	World string `yaml:"world"`
}

// UIConfig configures terminal rendering.
type UIConfig struct {
	// NoColor disables all styling.
	NoColor bool `yaml:"no_color"`
	// Plain forces the line-oriented renderer even on a TTY.
	Plain bool `yaml:"plain"`
}

// LoggingConfig configures file logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// File overrides the default log file path.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration: defaults, then the user
// file, then the project file in dir, then environment variables.
// Missing files are fine; unreadable or invalid ones are errors.
func Load(dir string) (Config, error) {
	cfg := Default()

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".hollowkeep", UserConfigName)
		if err := mergeFile(&cfg, userPath); err != nil {
			return cfg, err
		}
	}

	if err := mergeFile(&cfg, filepath.Join(dir, ProjectConfigName)); err != nil {
		return cfg, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeFile overlays a YAML file onto cfg if the file exists.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeConfigNotFound, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.ConfigError("invalid config file", err).
			WithDetail("path", path)
	}
	return nil
}

// applyEnv overlays HOLLOWKEEP_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("HOLLOWKEEP_WORLD"); v != "" {
		cfg.Game.World = v
	}
	if v := os.Getenv("HOLLOWKEEP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if isEnvTruthy("HOLLOWKEEP_NO_COLOR") {
		cfg.UI.NoColor = true
	}
	if isEnvTruthy("HOLLOWKEEP_PLAIN") {
		cfg.UI.Plain = true
	}
}

// isEnvTruthy reports whether an env var is set to a true-ish value.
func isEnvTruthy(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.ConfigError("unknown log level", nil).
			WithDetail("level", c.Logging.Level).
			WithSuggestion("use debug, info, warn or error")
	}
	return nil
}
