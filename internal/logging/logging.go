// Package logging builds the diagnostic logger shared by the CLI and sessions.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mastermind/internal/config"
)

// Prefix tags every log line.
const Prefix = "mastermind"

// New creates a logger writing to w. Diagnostics belong on stderr so they
// never mix with the game text on stdout.
func New(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		Prefix:          Prefix,
		Level:           level,
	}), nil
}
