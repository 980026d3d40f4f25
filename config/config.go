// Package config loads runtime settings for the game and its tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SimConfig controls the simulation itself.
type SimConfig struct {
	// Seed for the simulation RNG; 0 picks one from the clock.
	Seed int64 `mapstructure:"seed"`
	// TPS is the fixed tick rate.
	TPS int `mapstructure:"tps"`
	// Level is an optional CSV layout path; empty uses the embedded level.
	Level string `mapstructure:"level"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// PrefabsConfig points tuning loads at a directory on disk.
type PrefabsConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

type HighScoreConfig struct {
	Path string `mapstructure:"path"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Config is the top-level application configuration.
type Config struct {
	Sim       SimConfig       `mapstructure:"sim"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Prefabs   PrefabsConfig   `mapstructure:"prefabs"`
	HighScore HighScoreConfig `mapstructure:"highscore"`
	Window    WindowConfig    `mapstructure:"window"`
}

// Validate checks all configuration invariants and reports every
// violation at once.
func (c Config) Validate() error {
	var errs []string

	if c.Sim.TPS < 1 || c.Sim.TPS > 240 {
		errs = append(errs, fmt.Sprintf("sim.tps must be 1-240, got %d", c.Sim.TPS))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Prefabs.Watch && c.Prefabs.Dir == "" {
		errs = append(errs, "prefabs.watch requires prefabs.dir")
	}
	if c.HighScore.Path == "" {
		errs = append(errs, "highscore.path must not be empty")
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Sprintf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from path, applies DUSKWATCH_ environment
// overrides and validates the result. An empty path uses defaults and the
// environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DUSKWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.tps", 60)
	v.SetDefault("sim.level", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("prefabs.dir", "")
	v.SetDefault("prefabs.watch", false)

	v.SetDefault("highscore.path", "highscore.txt")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "duskwatch")
}
