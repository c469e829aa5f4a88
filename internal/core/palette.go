package core

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CodeLength is the number of pegs in a secret or a guess.
const CodeLength = 4

// symbols maps each palette color to its input letter.
var symbols = map[Color]rune{
	ColorRed:    'R',
	ColorPurple: 'P',
	ColorYellow: 'Y',
	ColorGrey:   'G',
	ColorBlue:   'B',
	ColorCyan:   'C',
	ColorOrange: 'O',
	ColorWhite:  'W',
}

// Symbol returns the input letter for a palette color.
func Symbol(c Color) rune {
	r, ok := symbols[c]
	if !ok {
		panic(fmt.Sprintf("core: no symbol for color %d", uint8(c)))
	}
	return r
}

// SymbolToColor maps an input letter to a color, ignoring case.
// Every rune that is not one of R P Y G B C O maps to White, so an explicit
// W and an unknown letter are the same value. ValidateInput is what rejects
// unknown letters.
func SymbolToColor(r rune) Color {
	switch unicode.ToUpper(r) {
	case 'R':
		return ColorRed
	case 'P':
		return ColorPurple
	case 'Y':
		return ColorYellow
	case 'G':
		return ColorGrey
	case 'B':
		return ColorBlue
	case 'C':
		return ColorCyan
	case 'O':
		return ColorOrange
	default:
		return ColorWhite
	}
}

// IsSymbol reports whether r is a palette letter in either case.
func IsSymbol(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'R', 'P', 'Y', 'G', 'B', 'C', 'O', 'W':
		return true
	}
	return false
}

// InputErrorKind classifies a rejected guess.
type InputErrorKind int

const (
	WrongColor InputErrorKind = iota + 1
	WrongLength
)

// InputError describes why raw input is not a valid guess.
// It is a user-facing condition; callers print it and prompt again.
type InputError struct {
	Kind   InputErrorKind
	Char   rune // offending letter, uppercased (WrongColor)
	Length int  // actual length in runes (WrongLength)
}

func (e *InputError) Error() string {
	switch e.Kind {
	case WrongColor:
		return fmt.Sprintf("wrong color %c", e.Char)
	case WrongLength:
		return fmt.Sprintf("wrong number of colors %d", e.Length)
	default:
		return "invalid input"
	}
}

// ValidateInput checks that raw is exactly CodeLength palette letters.
// The first unknown letter is reported before the length.
func ValidateInput(raw string) error {
	for _, r := range raw {
		if !IsSymbol(r) {
			return &InputError{Kind: WrongColor, Char: unicode.ToUpper(r)}
		}
	}
	if n := utf8.RuneCountInString(raw); n != CodeLength {
		return &InputError{Kind: WrongLength, Length: n}
	}
	return nil
}

// Valid is the boolean form of ValidateInput.
func Valid(raw string) bool {
	return ValidateInput(raw) == nil
}

// NormalizeInput strips the line terminator and surrounding blanks from a
// raw input line.
func NormalizeInput(line string) string {
	return strings.TrimSpace(strings.TrimRight(line, "\r\n"))
}

// Legend returns the help text listing every letter and its color, as
// "R => Red   P => Purple ..." wrapped four entries per line.
func Legend(p Painter) string {
	var sb strings.Builder
	for i, c := range palette {
		if i > 0 {
			if i%4 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteString("  ")
			}
		}
		fmt.Fprintf(&sb, "%c => %s", Symbol(c), p.Paint(c))
	}
	return sb.String()
}
