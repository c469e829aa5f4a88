package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mastermind/internal/console"
	"github.com/vovakirdan/mastermind/internal/core"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the console",
	Long: `Start a line-oriented game on standard input and output.

Type four color letters and press Enter, e.g. RPYG. Letters are
case-insensitive. Invalid input does not cost an attempt.
After a round ends, answer Y to play again or anything else to quit.

Examples:
  mastermind play
  mastermind play --seed 42
  mastermind play --scoring legacy --color never`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fail("%v", err)
	}

	sess := console.NewSession(s.game, core.NewStreamInput(os.Stdin), os.Stdout, console.Options{
		Painter: s.painter,
		Logger:  s.logger,
		Legend:  s.cfg.Legend,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fail("%v", err)
	}
}
