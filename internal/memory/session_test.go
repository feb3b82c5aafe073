package memory

import (
	"slices"
	"testing"
	"time"

	"brawl-memory/internal/core"

	"github.com/samber/lo"
)

func newFromDeck(t *testing.T, deck []string, clock core.Clock) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Pairs = len(deck) / 2
	s := newSession(cfg, clock)
	s.deal(deck)
	return s
}

func exampleDeck() []string {
	return []string{
		"Shelly", "Colt", "Bull", "Jessie",
		"Brock", "Dynamike", "Bo", "Tick",
		"Shelly", "Colt", "Bull", "Jessie",
		"Brock", "Dynamike", "Bo", "Tick",
	}
}

func partnerOf(s *Session, index int) int {
	for i := 0; i < s.Len(); i++ {
		if i != index && s.Card(i).Identity == s.Card(index).Identity {
			return i
		}
	}
	return -1
}

func TestDealPairsEveryIdentity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		deck := Deal(DefaultPalette, 8, core.NewRNG(seed))
		if len(deck) != 16 {
			t.Fatalf("seed %d: expected 16 cards, got %d", seed, len(deck))
		}
		counts := lo.CountValues(deck)
		if len(counts) != 8 {
			t.Fatalf("seed %d: expected 8 identities, got %d", seed, len(counts))
		}
		for name, n := range counts {
			if n != 2 {
				t.Fatalf("seed %d: identity %q appears %d times", seed, name, n)
			}
			if !slices.Contains(DefaultPalette, name) {
				t.Fatalf("seed %d: identity %q not in palette", seed, name)
			}
		}
	}
}

func TestDealClampsPairs(t *testing.T) {
	deck := Deal([]string{"A", "B", " ", "A"}, 5, core.NewRNG(3))
	if len(deck) != 4 {
		t.Fatalf("expected pairs clamped to the 2 usable names, got %d cards", len(deck))
	}
	if got := Deal(nil, 0, core.NewRNG(3)); len(got) != 2 {
		t.Fatalf("expected at least one pair, got %d cards", len(got))
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := newFromDeck(t, exampleDeck(), clock)

	if c := s.Card(1); c.Row != 0 || c.Col != 1 {
		t.Fatalf("expected card 1 at (0,1), got (%d,%d)", c.Row, c.Col)
	}
	if got := s.Flip(0); got != OutcomeFlipped {
		t.Fatalf("expected first flip to be pending, got %v", got)
	}
	if got := s.Flip(1); got != OutcomeMismatch {
		t.Fatalf("expected shelly/colt mismatch, got %v", got)
	}
	if s.Attempts() != 1 {
		t.Fatalf("expected 1 attempt, got %d", s.Attempts())
	}

	clock.Advance(DefaultFlipDelay / 2)
	s.Update()
	if !s.Card(0).FaceUp || !s.Card(1).FaceUp {
		t.Fatal("mismatched cards should stay visible during the delay")
	}
	if got := s.Flip(2); got != OutcomeIgnored {
		t.Fatalf("third click during the delay should be ignored, got %v", got)
	}
	if s.Card(2).FaceUp {
		t.Fatal("third card must not flip while a pair is pending")
	}

	clock.Advance(DefaultFlipDelay)
	s.Update()
	if s.Card(0).FaceUp || s.Card(1).FaceUp {
		t.Fatal("mismatched cards should flip back down after the delay")
	}
	if s.Attempts() != 1 {
		t.Fatalf("flip-back must not count an attempt, got %d", s.Attempts())
	}
	if s.Waiting() {
		t.Fatal("countdown should be disarmed after flip-back")
	}
}

func TestMatchIsPermanent(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := newFromDeck(t, exampleDeck(), clock)

	s.Flip(0)
	if got := s.Flip(8); got != OutcomeMatch {
		t.Fatalf("expected shelly pair to match, got %v", got)
	}
	if !s.Card(0).Matched || !s.Card(8).Matched {
		t.Fatal("matched cards must be marked")
	}
	if s.Attempts() != 1 || s.Matches() != 1 {
		t.Fatalf("expected 1 attempt and 1 match, got %d/%d", s.Attempts(), s.Matches())
	}

	clock.Advance(10 * DefaultFlipDelay)
	s.Update()
	if !s.Card(0).FaceUp || !s.Card(8).FaceUp {
		t.Fatal("matched cards must stay face-up")
	}
}

func TestClickOnMatchedOrFaceUpIsNoop(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := newFromDeck(t, exampleDeck(), clock)

	s.Flip(0)
	s.Flip(8)
	before := slices.Clone(s.cards)
	if got := s.Flip(0); got != OutcomeIgnored {
		t.Fatalf("click on matched card should be ignored, got %v", got)
	}
	if !slices.Equal(before, s.cards) || s.Attempts() != 1 {
		t.Fatal("click on matched card changed state")
	}

	s.Flip(1)
	before = slices.Clone(s.cards)
	if got := s.Flip(1); got != OutcomeIgnored {
		t.Fatalf("click on face-up card should be ignored, got %v", got)
	}
	if !slices.Equal(before, s.cards) || s.Attempts() != 1 {
		t.Fatal("click on face-up card changed state")
	}

	for _, idx := range []int{-1, s.Len()} {
		if got := s.Flip(idx); got != OutcomeIgnored {
			t.Fatalf("out-of-range index %d should be ignored, got %v", idx, got)
		}
	}
}

func TestPerfectGameWins(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := New(DefaultConfig(), clock, 11)

	done := map[int]bool{}
	for i := 0; i < s.Len(); i++ {
		if done[i] {
			continue
		}
		j := partnerOf(s, i)
		if s.Won() {
			t.Fatal("session won before all pairs were matched")
		}
		s.Flip(i)
		clock.Advance(time.Second)
		if got := s.Flip(j); got != OutcomeMatch {
			t.Fatalf("expected match for %d/%d, got %v", i, j, got)
		}
		done[i], done[j] = true, true
	}

	if !s.Won() || s.State() != StateWon {
		t.Fatal("session should be won once every card is matched")
	}
	if s.Attempts() != s.Pairs() {
		t.Fatalf("perfect game should take %d attempts, got %d", s.Pairs(), s.Attempts())
	}
	elapsed := s.Elapsed()
	clock.Advance(time.Minute)
	if s.Elapsed() != elapsed {
		t.Fatal("elapsed time must freeze after the win")
	}
	if got := s.Flip(0); got != OutcomeIgnored {
		t.Fatalf("flips after the win should be ignored, got %v", got)
	}
}

func TestAttemptsAtLeastPairs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		clock := core.NewManualClock(time.Unix(0, 0))
		s := New(DefaultConfig(), clock, seed)
		rng := core.NewRNG(seed)
		// Flip random cards, never remembering anything.
		for guard := 0; !s.Won() && guard < 100000; guard++ {
			if s.Flip(rng.IntN(s.Len())) == OutcomeMismatch {
				clock.Advance(DefaultFlipDelay)
				s.Update()
			}
		}
		if !s.Won() {
			t.Fatalf("seed %d: session never finished", seed)
		}
		if s.Attempts() < s.Pairs() {
			t.Fatalf("seed %d: %d attempts for %d pairs", seed, s.Attempts(), s.Pairs())
		}
	}
}

func TestRestartResets(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := New(DefaultConfig(), clock, 5)
	original := lo.Map(s.cards, func(c Card, _ int) string { return c.Identity })
	firstID := s.ID()

	s.Flip(0)
	s.Flip(partnerOf(s, 0))
	clock.Advance(30 * time.Second)

	s.Restart(6)
	if s.Attempts() != 0 || s.Matches() != 0 {
		t.Fatalf("restart should zero counters, got attempts=%d matches=%d", s.Attempts(), s.Matches())
	}
	if s.Elapsed() != 0 {
		t.Fatalf("restart should zero elapsed time, got %v", s.Elapsed())
	}
	if s.State() != StatePlaying {
		t.Fatalf("restart should return to playing, got %v", s.State())
	}
	if s.ID() == firstID {
		t.Fatal("restart should assign a new session id")
	}
	for i := 0; i < s.Len(); i++ {
		if c := s.Card(i); c.FaceUp || c.Matched {
			t.Fatalf("card %d not face-down after restart", i)
		}
	}

	restarted := lo.Map(s.cards, func(c Card, _ int) string { return c.Identity })
	if len(restarted) != len(original) {
		t.Fatalf("restart changed the card count: %d vs %d", len(restarted), len(original))
	}
	for name, n := range lo.CountValues(restarted) {
		if n != 2 {
			t.Fatalf("identity %q appears %d times after restart", name, n)
		}
	}
	if !lo.ElementsMatch(original, restarted) {
		t.Fatal("restart should keep the same identities on the board")
	}
	if slices.Equal(original, restarted) {
		t.Fatal("restart with a different seed should rearrange the board")
	}
}

func TestModeSnapshot(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := newFromDeck(t, exampleDeck(), clock)

	s.Click(0)
	s.Click(1)
	views := s.Cards()
	if !views[0].Highlight || !views[1].Highlight || views[2].Highlight {
		t.Fatal("only the mismatched pair should be highlighted")
	}
	stats := s.Stats()
	if stats.Attempts != 1 || stats.Total != 8 || stats.Score != 0 || stats.Over {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Countdown <= 0 {
		t.Fatal("countdown should be running during the mismatch delay")
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Modes()["memory"]
	if !ok {
		t.Fatal("memory mode not registered")
	}
	clock := core.NewManualClock(time.Unix(0, 0))
	mode := factory(core.ModeConfig{Seed: 9, Pairs: 5, Clock: clock})
	if got := len(mode.Cards()); got != 10 {
		t.Fatalf("expected 10 cards for 5 pairs, got %d", got)
	}
	if mode.Name() != "memory" {
		t.Fatalf("unexpected mode name %q", mode.Name())
	}
}
