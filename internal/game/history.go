package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mastermind/internal/core"
)

// History is the ordered record of scored guesses in the current round.
type History struct {
	entries []core.Feedback
}

// Append records a scored guess.
func (h *History) Append(f core.Feedback) {
	h.entries = append(h.entries, f)
}

// Len returns the number of recorded guesses.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded guesses in insertion order.
func (h *History) Entries() []core.Feedback {
	out := make([]core.Feedback, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the most recent entry.
func (h *History) Last() (core.Feedback, bool) {
	if len(h.entries) == 0 {
		return core.Feedback{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clear forgets all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Render returns one line per guess:
//
//	< Right=1 Red Red Blue White 2=Wrong >
func (h *History) Render(p core.Painter) string {
	var sb strings.Builder
	for _, f := range h.entries {
		sb.WriteString(FormatFeedback(p, f))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatFeedback renders a single history line.
func FormatFeedback(p core.Painter, f core.Feedback) string {
	return fmt.Sprintf("< Right=%d %s %d=Wrong >", f.Exact, core.FormatCode(p, f.Guess.Code()), f.ColorOnly)
}
