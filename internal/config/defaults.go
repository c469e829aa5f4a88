package config

import (
	_ "embed"
)

//go:embed defaults/mastermind.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scoring: "canonical",
		Color:   ColorAuto,
		Legend:  true,
		Log: LogConfig{
			Level:      "warn",
			Timestamps: false,
		},
	}
}
