// Package render maps palette colors to terminal styles.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/mastermind/internal/core"
)

// colorCodes maps palette colors to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:    "1",
	core.ColorPurple: "5",
	core.ColorYellow: "3",
	core.ColorGrey:   "245",
	core.ColorBlue:   "4",
	core.ColorCyan:   "6",
	core.ColorOrange: "208",
	core.ColorWhite:  "7",
}

// Painter renders color names in their own color.
type Painter struct {
	styles map[core.Color]lipgloss.Style
}

// NewPainter returns a core.Painter for w. When color is false the result
// renders plain names, otherwise ANSI 256-color output is forced regardless
// of what w looks like.
func NewPainter(w io.Writer, color bool) core.Painter {
	if !color {
		return core.PlainPainter{}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	styles := make(map[core.Color]lipgloss.Style, len(colorCodes))
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Painter{styles: styles}
}

// Paint returns the styled color name. Panics for ColorNone.
func (p Painter) Paint(c core.Color) string {
	name := c.Name()
	style, ok := p.styles[c]
	if !ok {
		return name
	}
	return style.Render(name)
}
