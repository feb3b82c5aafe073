package ui

import (
	"testing"
	"time"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"

	"golang.org/x/text/language"
)

type pairsTarget struct{ pairs int }

func (p *pairsTarget) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "pairs", Type: core.ParamTypeInt, Step: 1, Min: 5, Max: 10, HasMin: true, HasMax: true}}
}

func (p *pairsTarget) IntParameter(key string) (int, bool) {
	return p.pairs, key == "pairs"
}

func (p *pairsTarget) SetIntParameter(key string, value int) bool {
	if key != "pairs" {
		return false
	}
	p.pairs = value
	return true
}

func TestActionAt(t *testing.T) {
	buttons := MenuButtons(core.Size{W: 1024, H: 768})
	cases := []struct {
		x, y int
		want Action
	}{
		{512, 290, ActionMemory},
		{512, 390, ActionChallenge},
		{512, 490, ActionExit},
		{512, 340, ActionNone},
		{10, 290, ActionNone},
	}
	for _, tc := range cases {
		if got := ActionAt(buttons, tc.x, tc.y); got != tc.want {
			t.Fatalf("(%d,%d): got %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSelectorButtons(t *testing.T) {
	buttons := SelectorButtons(core.Size{W: 1024, H: 768})
	if got := ActionAt(buttons, 512-75, 325); got != ActionDecrement {
		t.Fatalf("expected decrement, got %v", got)
	}
	if got := ActionAt(buttons, 512+75, 325); got != ActionIncrement {
		t.Fatalf("expected increment, got %v", got)
	}
	if got := ActionAt(buttons, 512, 430); got != ActionStart {
		t.Fatalf("expected start, got %v", got)
	}
}

func TestButtonText(t *testing.T) {
	screen := core.Size{W: 1024, H: 768}
	buttons := append(MenuButtons(screen), SelectorButtons(screen)...)
	for _, locale := range []string{"en-US", "pt-BR"} {
		p := i18n.NewPrinter(language.MustParse(locale))
		for _, b := range buttons {
			got := b.Text(p)
			switch {
			case b.LabelKey == "" && got != b.Label:
				t.Fatalf("%s: literal label %q rendered as %q", locale, b.Label, got)
			case b.LabelKey != "" && (got == "" || got == b.LabelKey):
				t.Fatalf("%s: key %q has no catalog message", locale, b.LabelKey)
			}
		}
	}
	sel := SelectorButtons(screen)
	if sel[0].Text(nil) != "-" || sel[1].Text(nil) != "+" {
		t.Fatalf("expected -/+ captions, got %q %q", sel[0].Label, sel[1].Label)
	}
}

func TestDifficultyBands(t *testing.T) {
	want := map[int]Difficulty{
		5: DifficultyEasy, 6: DifficultyEasy,
		7: DifficultyMedium, 8: DifficultyMedium,
		9: DifficultyHard, 10: DifficultyHard,
	}
	for pairs, d := range want {
		if got := DifficultyFor(pairs); got != d {
			t.Fatalf("%d pairs: got %v, expected %v", pairs, got, d)
		}
	}
}

func TestAdjustRespectsBounds(t *testing.T) {
	target := &pairsTarget{pairs: 9}
	if !Adjust(target, "pairs", 1) || target.pairs != 10 {
		t.Fatalf("expected increment to 10, got %d", target.pairs)
	}
	if CanAdjust(target, "pairs", 1) {
		t.Fatal("expected increment past the maximum to be disabled")
	}
	if Adjust(target, "pairs", 1) || target.pairs != 10 {
		t.Fatalf("expected value to stay at 10, got %d", target.pairs)
	}

	target.pairs = 5
	if CanAdjust(target, "pairs", -1) || Adjust(target, "pairs", -1) {
		t.Fatal("expected decrement below the minimum to be refused")
	}
	if Adjust(target, "unknown", 1) {
		t.Fatal("expected unknown control to be refused")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                     "00:00",
		59 * time.Second:                      "00:59",
		time.Minute + 5*time.Second:           "01:05",
		12*time.Minute + 999*time.Millisecond: "12:00",
		-time.Second:                          "00:00",
	}
	for d, want := range cases {
		if got := FormatClock(d); got != want {
			t.Fatalf("%s: got %q, expected %q", d, got, want)
		}
	}
}
