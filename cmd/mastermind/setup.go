package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mastermind/internal/config"
	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/game"
	"github.com/vovakirdan/mastermind/internal/logging"
	"github.com/vovakirdan/mastermind/internal/platform/render"
	"github.com/vovakirdan/mastermind/internal/registry"
)

// session bundles everything a front end needs to start playing.
type session struct {
	cfg     config.Config
	game    *game.Game
	painter core.Painter
	logger  *log.Logger
}

// loadConfig resolves file, environment and flag settings, flags winning.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}

	if flagScoring != "" {
		cfg.Scoring = flagScoring
	}
	if flagColor != "" {
		cfg.Color = config.ColorMode(flagColor)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	return cfg, cfg.Validate()
}

// newSession builds the game and its collaborators from the resolved config.
func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	scorer, err := registry.Create(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	rt := core.RuntimeConfig{
		Seed:    flagSeed,
		Scoring: scorer.ID(),
	}

	colorOut := cfg.Color.Enabled(term.IsTerminal(int(os.Stdout.Fd())))
	logger.Debug("session configured",
		"scoring", rt.Scoring,
		"seed", rt.Seed,
		"color", colorOut,
	)

	return &session{
		cfg:     cfg,
		game:    game.New(scorer, game.RandomSecrets(rt.Rand())),
		painter: render.NewPainter(os.Stdout, colorOut),
		logger:  logger,
	}, nil
}

// fail prints an error and exits.
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}
