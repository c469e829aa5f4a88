package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseGuess(t *testing.T) {
	g, err := ParseGuess("rRbW")
	if err != nil {
		t.Fatalf("ParseGuess failed: %v", err)
	}
	want := Guess{ColorRed, ColorRed, ColorBlue, ColorWhite}
	if g != want {
		t.Errorf("ParseGuess(rRbW) = %v, want %v", g, want)
	}
	if got := g.Code().Symbols(); got != "RRBW" {
		t.Errorf("Symbols() = %q, want RRBW", got)
	}
}

func TestParseGuessRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "RPY", "RPYGB", "RPYX", "1234"} {
		_, err := ParseGuess(raw)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Errorf("ParseGuess(%q) error = %v, want *InputError", raw, err)
		}
	}
}

func TestGuessFromSlotsRequiresEverySlot(t *testing.T) {
	var slots [CodeLength]Slot
	slots[0] = Fill(ColorRed)
	slots[1] = Fill(ColorBlue)
	slots[2] = Fill(ColorCyan)

	if _, err := GuessFromSlots(slots); err == nil {
		t.Fatal("expected error for unfilled slot")
	}

	slots[3] = Fill(ColorNone)
	if _, err := GuessFromSlots(slots); err == nil {
		t.Fatal("expected error for sentinel slot")
	}

	slots[3] = Fill(ColorOrange)
	g, err := GuessFromSlots(slots)
	if err != nil {
		t.Fatalf("GuessFromSlots failed: %v", err)
	}
	if !g.Code().Complete() {
		t.Errorf("guess %v is not complete", g)
	}
}

func TestNewSecretUsesPaletteOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s := NewSecret(rng)
		if !s.Code().Complete() {
			t.Fatalf("secret %v holds a non-palette color", s)
		}
	}
}

func TestNewSecretCoversWholePalette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[Color]int)
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		for _, c := range NewSecret(rng) {
			counts[c]++
		}
	}

	// 16000 draws over 8 colors: expect ~2000 each.
	for _, c := range Colors() {
		if counts[c] < 1600 || counts[c] > 2400 {
			t.Errorf("color %v drawn %d times, expected about 2000", c, counts[c])
		}
	}
}

func TestNewSecretDeterministicWithSeed(t *testing.T) {
	a := NewSecret(rand.New(rand.NewSource(42)))
	b := NewSecret(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestCodeContains(t *testing.T) {
	c := MustParseSecret("RRBW").Code()
	if !c.Contains(ColorBlue) {
		t.Error("expected code to contain Blue")
	}
	if c.Contains(ColorCyan) {
		t.Error("expected code not to contain Cyan")
	}
}

func TestFormatCode(t *testing.T) {
	got := FormatCode(PlainPainter{}, MustParseGuess("RPYG").Code())
	if got != "Red Purple Yellow Grey" {
		t.Errorf("FormatCode() = %q", got)
	}
}

func TestMustParseGuessPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseGuess("nope")
}

func TestFeedbackSolved(t *testing.T) {
	if !(Feedback{Exact: CodeLength}).Solved() {
		t.Error("4 exact should be solved")
	}
	if (Feedback{Exact: 3, ColorOnly: 1}).Solved() {
		t.Error("3 exact should not be solved")
	}
}

func TestRuntimeConfigRand(t *testing.T) {
	cfg := RuntimeConfig{Seed: 99}
	if NewSecret(cfg.Rand()) != NewSecret(cfg.Rand()) {
		t.Error("fixed seed should give the same secret")
	}
	if DefaultConfig().Scoring != "canonical" {
		t.Errorf("default scoring = %q", DefaultConfig().Scoring)
	}
}
