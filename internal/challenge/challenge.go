// Package challenge implements the match challenge: after a short preview of
// the board, the player must find the card matching a shown target.
package challenge

import (
	"log"
	"time"

	"brawl-memory/internal/core"
	"brawl-memory/internal/memory"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Phase is the challenge lifecycle.
type Phase int

const (
	PhasePreview Phase = iota
	PhasePlaying
	PhaseResult
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePreview:
		return "preview"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	default:
		return "over"
	}
}

const (
	DefaultPreview = 5 * time.Second
	DefaultResult  = 1500 * time.Millisecond
	DefaultRounds  = 10
	DefaultCards   = 5
)

// Config controls the board size and phase timings.
type Config struct {
	Cards   int
	Rounds  int
	Preview time.Duration
	Result  time.Duration
	Palette []string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cards:   DefaultCards,
		Rounds:  DefaultRounds,
		Preview: DefaultPreview,
		Result:  DefaultResult,
		Palette: memory.DefaultPalette,
	}
}

// Card is one board cell; every identity appears once.
type Card struct {
	Identity string
	FaceUp   bool
}

// Game is one run of the challenge.
type Game struct {
	id    uuid.UUID
	cfg   Config
	clock core.Clock
	rng   *core.RNG

	cards   []Card
	target  string
	picked  int
	correct bool
	phase   Phase
	score   int
	rounds  int

	preview *core.Countdown
	result  *core.Countdown
	watch   *core.Stopwatch
}

// New deals a challenge using seed.
func New(cfg Config, clock core.Clock, seed int64) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.Preview <= 0 {
		cfg.Preview = DefaultPreview
	}
	if cfg.Result <= 0 {
		cfg.Result = DefaultResult
	}
	cfg.Palette = memory.NormalizePalette(cfg.Palette)
	g := &Game{
		cfg:     cfg,
		clock:   clock,
		preview: core.NewCountdown(clock, cfg.Preview),
		result:  core.NewCountdown(clock, cfg.Result),
		watch:   core.NewStopwatch(clock),
	}
	g.Restart(seed)
	return g
}

// Restart deals a new board and returns to the preview phase.
func (g *Game) Restart(seed int64) {
	g.id = uuid.New()
	g.rng = core.NewRNG(seed)
	names := memory.Choose(g.cfg.Palette, g.cfg.Cards, g.rng)
	g.cards = lo.Map(names, func(name string, _ int) Card {
		return Card{Identity: name, FaceUp: true}
	})
	g.target = ""
	g.picked = -1
	g.correct = false
	g.score = 0
	g.rounds = 0
	g.phase = PhasePreview
	g.result.Stop()
	g.preview.Start()
	g.watch.Reset()
	log.Printf("challenge %s started: %d cards, %d rounds", g.id, len(g.cards), g.cfg.Rounds)
}

// Pick selects the card at index as the match for the current target.
// It only has an effect while playing.
func (g *Game) Pick(index int) bool {
	if g.phase != PhasePlaying || index < 0 || index >= len(g.cards) {
		return false
	}
	if g.cards[index].FaceUp {
		return false
	}
	g.cards[index].FaceUp = true
	g.picked = index
	g.rounds++
	g.correct = g.cards[index].Identity == g.target
	if g.correct {
		g.score++
	}
	g.phase = PhaseResult
	g.result.Start()
	return true
}

// Update advances timed phases; call once per frame.
func (g *Game) Update() {
	switch g.phase {
	case PhasePreview:
		if g.preview.Expired() {
			g.preview.Stop()
			g.hideAll()
			g.chooseTarget()
			g.phase = PhasePlaying
		}
	case PhaseResult:
		if !g.result.Expired() {
			return
		}
		g.result.Stop()
		g.hideAll()
		g.picked = -1
		if g.rounds >= g.cfg.Rounds {
			g.phase = PhaseOver
			g.target = ""
			g.watch.Stop()
			log.Printf("challenge %s over: %d/%d correct", g.id, g.score, g.rounds)
			return
		}
		g.chooseTarget()
		g.phase = PhasePlaying
	}
}

func (g *Game) hideAll() {
	for i := range g.cards {
		g.cards[i].FaceUp = false
	}
}

// chooseTarget picks a random identity, avoiding an immediate repeat.
func (g *Game) chooseTarget() {
	candidates := lo.FilterMap(g.cards, func(c Card, _ int) (string, bool) {
		return c.Identity, c.Identity != g.target
	})
	if len(candidates) == 0 {
		candidates = lo.Map(g.cards, func(c Card, _ int) string { return c.Identity })
	}
	if len(candidates) == 0 {
		g.target = ""
		return
	}
	g.target = candidates[g.rng.IntN(len(candidates))]
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Target returns the identity to find, empty outside the playing phases.
func (g *Game) Target() string { return g.target }

// Score returns the number of correct picks.
func (g *Game) Score() int { return g.score }

// Rounds returns the number of picks made.
func (g *Game) Rounds() int { return g.rounds }

// Correct reports whether the last pick matched its target.
func (g *Game) Correct() bool { return g.correct }

// Len returns the number of cards.
func (g *Game) Len() int { return len(g.cards) }

// Card returns a copy of the card at index.
func (g *Game) Card(index int) Card { return g.cards[index] }
