// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the log file path. Empty sends logs to stderr, which will
	// interleave with the game screen; a file is recommended for play.
	File string `mapstructure:"file"`
}

// ProfilesConfig holds profile storage settings.
type ProfilesConfig struct {
	// Dir overrides the platform profile directory. Empty uses the
	// default <home>/albion_term_rpg/profiles.
	Dir string `mapstructure:"dir"`
}

// GameConfig holds gameplay pacing and tuning settings.
type GameConfig struct {
	// MessageDelaySeconds is the pause after each narrated battle line.
	MessageDelaySeconds int `mapstructure:"message_delay_seconds"`
	// StrongholdDepth is the number of battles in the stronghold.
	StrongholdDepth int `mapstructure:"stronghold_depth"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
	Game     GameConfig     `mapstructure:"game"`
}

// Load reads configuration from the optional YAML file at path, applying
// defaults and ALBION_-prefixed environment overrides.
//
// Precondition: path may be empty, meaning defaults and environment only.
// Postcondition: returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
	v.SetDefault("profiles.dir", "")
	v.SetDefault("game.message_delay_seconds", 1)
	v.SetDefault("game.stronghold_depth", 50)

	v.SetEnvPrefix("ALBION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks all configuration invariants.
//
// Postcondition: returns nil if the configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be debug, info, warn, or error; got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be json or console; got %q", c.Logging.Format))
	}
	if c.Game.MessageDelaySeconds < 0 {
		errs = append(errs, "game.message_delay_seconds must not be negative")
	}
	if c.Game.StrongholdDepth < 1 {
		errs = append(errs, "game.stronghold_depth must be at least 1")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
