// Package config provides YAML-based settings loading for mastermind,
// with environment variable overrides.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all user settings.
type Config struct {
	Scoring string    `yaml:"scoring" env:"SCORING"`
	Color   ColorMode `yaml:"color" env:"COLOR"`
	Legend  bool      `yaml:"legend" env:"LEGEND"`
	Log     LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`
	Timestamps bool   `yaml:"timestamps" env:"TIMESTAMPS"`
}

// ColorMode selects when color names are styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled resolves the mode; isTerminal is consulted only for auto.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// Validate checks values that can be checked without the scoring registry.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Scoring == "" {
		return fmt.Errorf("config: scoring policy must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}
