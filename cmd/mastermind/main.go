// mastermind is a terminal code-breaking game: guess the hidden sequence of
// four colors in at most 12 attempts.
//
// Usage:
//
//	mastermind               - Play in the console (same as "play")
//	mastermind play          - Play in the console
//	mastermind tui           - Play in a full-screen terminal UI
//	mastermind colors        - Show the color letters
//	mastermind policies      - List scoring policies
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible secrets
//	--config <path>      - Path to a config YAML
//	--scoring <id>       - Scoring policy (default: canonical)
//	--color <mode>       - auto, always or never
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scoring policies to register them
	_ "github.com/vovakirdan/mastermind/internal/scoring"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagScoring  string
	flagColor    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Mastermind - break the color code in your terminal",
	Long: `Mastermind hides a sequence of four colors. Enter guesses such as RPYG;
after each guess you learn how many colors are in the right place (Right)
and how many are the right color in the wrong place (Wrong).
You have 12 attempts per round.

Colors: R Red, P Purple, Y Yellow, G Grey, B Blue, C Cyan, O Orange, W White

Available commands:
  play      - Play in the console (default)
  tui       - Play in a full-screen terminal UI
  colors    - Show the color letters
  policies  - List scoring policies

Examples:
  mastermind
  mastermind play --seed 42
  mastermind tui --scoring legacy
  mastermind --color never`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScoring, "scoring", "", "Scoring policy (see 'mastermind policies')")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Colored output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(policiesCmd)
}
