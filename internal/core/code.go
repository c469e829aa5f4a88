package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// Code is an ordered sequence of CodeLength colors.
type Code [CodeLength]Color

// Complete reports whether every peg holds a palette color.
func (c Code) Complete() bool {
	for _, col := range c {
		if !col.Valid() {
			return false
		}
	}
	return true
}

// Contains reports whether col appears anywhere in the code.
func (c Code) Contains(col Color) bool {
	for _, x := range c {
		if x == col {
			return true
		}
	}
	return false
}

// Symbols returns the code as input letters, e.g. "RRBW".
func (c Code) Symbols() string {
	var sb strings.Builder
	for _, col := range c {
		sb.WriteRune(Symbol(col))
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (c Code) String() string {
	parts := make([]string, len(c))
	for i, col := range c {
		parts[i] = col.String()
	}
	return strings.Join(parts, " ")
}

// Secret is the hidden code of a round.
type Secret Code

// Code returns the underlying colors.
func (s Secret) Code() Code { return Code(s) }

func (s Secret) String() string { return Code(s).String() }

// Guess is one player submission.
type Guess Code

// Code returns the underlying colors.
func (g Guess) Code() Code { return Code(g) }

func (g Guess) String() string { return Code(g).String() }

// NewSecret draws CodeLength independent colors uniformly from the palette.
// Repeated colors are allowed.
func NewSecret(rng *rand.Rand) Secret {
	var s Secret
	for i := range s {
		s[i] = palette[rng.Intn(NumColors)]
	}
	return s
}

// Slot is a peg position that may not be filled yet.
type Slot struct {
	color Color
	set   bool
}

// Fill returns a slot holding c.
func Fill(c Color) Slot {
	return Slot{color: c, set: true}
}

// Get returns the slot color and whether it was filled.
func (s Slot) Get() (Color, bool) {
	return s.color, s.set
}

// GuessFromSlots builds a Guess once every slot is filled with a palette color.
func GuessFromSlots(slots [CodeLength]Slot) (Guess, error) {
	var g Guess
	for i, s := range slots {
		c, ok := s.Get()
		if !ok || !c.Valid() {
			return Guess{}, fmt.Errorf("core: slot %d is empty", i)
		}
		g[i] = c
	}
	return g, nil
}

// ParseGuess validates raw and converts it letter by letter into a Guess.
// The returned error is an *InputError when raw is rejected.
func ParseGuess(raw string) (Guess, error) {
	if err := ValidateInput(raw); err != nil {
		return Guess{}, err
	}

	var slots [CodeLength]Slot
	i := 0
	for _, r := range raw {
		slots[i] = Fill(SymbolToColor(r))
		i++
	}
	return GuessFromSlots(slots)
}

// MustParseGuess is ParseGuess for fixtures; it panics on invalid input.
func MustParseGuess(raw string) Guess {
	g, err := ParseGuess(raw)
	if err != nil {
		panic(err)
	}
	return g
}

// MustParseSecret builds a Secret from letters, panicking on invalid input.
func MustParseSecret(raw string) Secret {
	return Secret(MustParseGuess(raw))
}

// Feedback is the score of one guess against the secret.
type Feedback struct {
	Guess     Guess
	Exact     int // right color, right position
	ColorOnly int // right color, wrong position
}

// Solved reports whether the guess reproduced the secret.
func (f Feedback) Solved() bool {
	return f.Exact == CodeLength
}
