package memory

import (
	"log"
	"time"

	"brawl-memory/internal/core"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// State is the session lifecycle.
type State int

const (
	StatePlaying State = iota
	StateWon
)

func (s State) String() string {
	if s == StateWon {
		return "won"
	}
	return "playing"
}

// Outcome reports what a Flip did.
type Outcome int

const (
	// OutcomeIgnored means the click changed nothing.
	OutcomeIgnored Outcome = iota
	// OutcomeFlipped means one card turned face-up and awaits a partner.
	OutcomeFlipped
	// OutcomeMatch means the second card completed a pair.
	OutcomeMatch
	// OutcomeMismatch means the second card differs; both flip back later.
	OutcomeMismatch
)

// DefaultFlipDelay is how long a mismatched pair stays visible.
const DefaultFlipDelay = 1500 * time.Millisecond

// DefaultPairs is the pair count used when none is configured.
const DefaultPairs = 8

// Card is one cell of the board.
type Card struct {
	Identity string
	Row, Col int
	FaceUp   bool
	Matched  bool
}

// Config controls dealing and timing.
type Config struct {
	Pairs     int
	Columns   int
	FlipDelay time.Duration
	Palette   []string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Pairs:     DefaultPairs,
		FlipDelay: DefaultFlipDelay,
		Palette:   DefaultPalette,
	}
}

// Session is one game of memory. It is owned by the frame loop and mutated
// only through Flip, Update and Restart.
type Session struct {
	id    uuid.UUID
	cfg   Config
	clock core.Clock

	cards    []Card
	pending  []int
	attempts int
	matches  int
	state    State

	flipBack *core.Countdown
	watch    *core.Stopwatch
}

// New deals a fresh session using seed.
func New(cfg Config, clock core.Clock, seed int64) *Session {
	s := newSession(cfg, clock)
	s.deal(Deal(s.cfg.Palette, s.cfg.Pairs, core.NewRNG(seed)))
	log.Printf("session %s started: %d pairs", s.id, s.Pairs())
	return s
}

func newSession(cfg Config, clock core.Clock) *Session {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if cfg.FlipDelay <= 0 {
		cfg.FlipDelay = DefaultFlipDelay
	}
	cfg.Palette = NormalizePalette(cfg.Palette)
	cfg.Pairs = clampPairs(cfg.Pairs, len(cfg.Palette))
	return &Session{
		cfg:      cfg,
		clock:    clock,
		flipBack: core.NewCountdown(clock, cfg.FlipDelay),
		watch:    core.NewStopwatch(clock),
	}
}

// deal lays out deck face-down and zeroes all counters.
func (s *Session) deal(deck []string) {
	s.id = uuid.New()
	cols := core.Columns(len(deck), s.cfg.Columns)
	s.cards = make([]Card, len(deck))
	for i, name := range deck {
		s.cards[i] = Card{Identity: name, Row: i / cols, Col: i % cols}
	}
	s.pending = s.pending[:0]
	s.attempts = 0
	s.matches = 0
	s.state = StatePlaying
	s.flipBack.Stop()
	s.watch.Reset()
}

// Restart rearranges the same identities with seed and resets attempts and
// time.
func (s *Session) Restart(seed int64) {
	rng := core.NewRNG(seed)
	identities := lo.Uniq(lo.Map(s.cards, func(c Card, _ int) string { return c.Identity }))
	if len(identities) == 0 {
		identities = Choose(s.cfg.Palette, s.cfg.Pairs, rng)
	}
	s.deal(Arrange(identities, rng))
	log.Printf("session %s restarted: %d pairs", s.id, s.Pairs())
}

// Flip turns the card at index face-up and resolves a completed pair.
func (s *Session) Flip(index int) Outcome {
	if s.state == StateWon || index < 0 || index >= len(s.cards) {
		return OutcomeIgnored
	}
	if len(s.pending) >= 2 {
		return OutcomeIgnored
	}
	card := &s.cards[index]
	if card.Matched || card.FaceUp {
		return OutcomeIgnored
	}

	card.FaceUp = true
	s.pending = append(s.pending, index)
	if len(s.pending) < 2 {
		return OutcomeFlipped
	}

	s.attempts++
	first, second := &s.cards[s.pending[0]], &s.cards[s.pending[1]]
	if first.Identity != second.Identity {
		s.flipBack.Start()
		return OutcomeMismatch
	}

	first.Matched = true
	second.Matched = true
	s.matches++
	s.pending = s.pending[:0]
	if s.allMatched() {
		s.state = StateWon
		s.watch.Stop()
		log.Printf("session %s won: %d attempts in %s", s.id, s.attempts, s.watch.Elapsed().Round(time.Second))
	}
	return OutcomeMatch
}

// Update flips a mismatched pair back once its delay has passed.
func (s *Session) Update() {
	if !s.flipBack.Expired() {
		return
	}
	for _, idx := range s.pending {
		s.cards[idx].FaceUp = false
	}
	s.pending = s.pending[:0]
	s.flipBack.Stop()
}

func (s *Session) allMatched() bool {
	return lo.EveryBy(s.cards, func(c Card) bool { return c.Matched })
}

// ID identifies the current deal; it changes on Restart.
func (s *Session) ID() uuid.UUID { return s.id }

// Len returns the number of cards.
func (s *Session) Len() int { return len(s.cards) }

// Card returns a copy of the card at index.
func (s *Session) Card(index int) Card { return s.cards[index] }

// Pairs returns the number of pairs on the board.
func (s *Session) Pairs() int { return len(s.cards) / 2 }

// Attempts returns the number of completed comparisons.
func (s *Session) Attempts() int { return s.attempts }

// Matches returns the number of pairs found.
func (s *Session) Matches() int { return s.matches }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Won reports whether every card is matched.
func (s *Session) Won() bool { return s.state == StateWon }

// Waiting reports whether a mismatched pair is on display.
func (s *Session) Waiting() bool { return s.flipBack.Armed() }

// Elapsed returns play time, frozen once the session is won.
func (s *Session) Elapsed() time.Duration { return s.watch.Elapsed() }
