package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mastermind/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen terminal UI",
	Long: `Start the game in a full-screen terminal interface.

Controls:
  R P Y G B C O W  - Type a guess
  Enter            - Submit guess / answer replay question
  Ctrl+U           - Clear input
  Esc/Ctrl+C       - Quit

Examples:
  mastermind tui
  mastermind tui --seed 7`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("tui needs an interactive terminal; use 'mastermind play' instead")
	}

	s, err := newSession()
	if err != nil {
		fail("%v", err)
	}

	if err := tui.Run(s.game, s.painter, s.logger); err != nil {
		fail("running tui: %v", err)
	}
}
