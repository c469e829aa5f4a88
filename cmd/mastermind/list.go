package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mastermind/internal/config"
	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/platform/render"
	"github.com/vovakirdan/mastermind/internal/registry"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List scoring policies",
	Long:  `Shows the scoring policies that can be passed to --scoring.`,
	Args:  cobra.NoArgs,
	Run:   runPolicies,
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the color letters",
	Long:  `Shows the letter to type for each color.`,
	Args:  cobra.NoArgs,
	Run:   runColors,
}

func runPolicies(cmd *cobra.Command, args []string) {
	policies := registry.List()

	if len(policies) == 0 {
		fmt.Println("No scoring policies available.")
		return
	}

	fmt.Println("Scoring policies:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range policies {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range policies {
		marker := ""
		if p.ID == registry.DefaultScorer {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, p.ID, p.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'mastermind --scoring <id>' to use a policy.")
}

func runColors(cmd *cobra.Command, args []string) {
	mode := config.ColorMode(flagColor)
	if mode == "" {
		mode = config.ColorAuto
	}
	painter := render.NewPainter(os.Stdout, mode.Enabled(term.IsTerminal(int(os.Stdout.Fd()))))

	fmt.Println(core.Legend(painter))
}
