package core

import "fmt"

// Color is one peg color of the palette.
// The zero value ColorNone is not part of the palette; it only marks an
// unfilled Slot and must never reach a Secret, a Guess or the renderer.
type Color uint8

// Palette colors, in legend order.
const (
	ColorNone Color = iota
	ColorRed
	ColorPurple
	ColorYellow
	ColorGrey
	ColorBlue
	ColorCyan
	ColorOrange
	ColorWhite
)

// NumColors is the size of the palette (ColorNone excluded).
const NumColors = 8

var palette = [NumColors]Color{
	ColorRed,
	ColorPurple,
	ColorYellow,
	ColorGrey,
	ColorBlue,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

var colorNames = [...]string{
	ColorNone:   "None",
	ColorRed:    "Red",
	ColorPurple: "Purple",
	ColorYellow: "Yellow",
	ColorGrey:   "Grey",
	ColorBlue:   "Blue",
	ColorCyan:   "Cyan",
	ColorOrange: "Orange",
	ColorWhite:  "White",
}

// Colors returns the palette in legend order.
func Colors() []Color {
	out := make([]Color, NumColors)
	copy(out, palette[:])
	return out
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorWhite
}

// Name returns the display name of a palette color.
// Panics for ColorNone or any out-of-range value.
func (c Color) Name() string {
	if !c.Valid() {
		panic(fmt.Sprintf("core: cannot render color %d", uint8(c)))
	}
	return colorNames[c]
}

// String implements fmt.Stringer. Unlike Name it never panics, so it is
// safe in log lines and test failures.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}
