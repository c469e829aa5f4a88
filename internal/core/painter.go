package core

import "strings"

// Painter turns a palette color into display text.
// Implementations must panic for colors that are not Valid.
type Painter interface {
	Paint(c Color) string
}

// PlainPainter renders bare color names without terminal styling.
type PlainPainter struct{}

// Paint returns the color name.
func (PlainPainter) Paint(c Color) string {
	return c.Name()
}

// FormatCode renders a code as space-separated painted color names.
func FormatCode(p Painter, c Code) string {
	parts := make([]string, len(c))
	for i, col := range c {
		parts[i] = p.Paint(col)
	}
	return strings.Join(parts, " ")
}
