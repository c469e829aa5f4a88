package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/game"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// renderStatus draws the round counters line.
func renderStatus(r game.RoundState) string {
	return statusStyle.Render(fmt.Sprintf(
		"Round %d  Attempt %d/%d  Left %d  Wins %d  Losses %d",
		r.Round, r.Attempt, game.MaxAttempts, r.AttemptsLeft(), r.Wins, r.Losses,
	))
}

// renderHistory draws the guesses of the round inside a box.
func renderHistory(p core.Painter, h *game.History) string {
	if h.Len() == 0 {
		return historyStyle.Render(statusStyle.Render("no guesses yet"))
	}
	return historyStyle.Render(strings.TrimRight(h.Render(p), "\n"))
}

// renderMessage styles the feedback line under the board.
func renderMessage(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return errorStyle.Render(msg)
	}
	return noticeStyle.Render(msg)
}
