package autoplay

import (
	"fmt"

	"brawl-memory/internal/core"
	"brawl-memory/internal/memory"

	"github.com/samber/lo"
)

// Strategy names how a simulated player picks cards.
type Strategy string

const (
	// StrategyPerfect never forgets a card it has seen.
	StrategyPerfect Strategy = "perfect"
	// StrategyRandom flips two random face-down cards every turn.
	StrategyRandom Strategy = "random"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case StrategyPerfect, StrategyRandom:
		return s, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (available: %s, %s)", name, StrategyPerfect, StrategyRandom)
	}
}

// player chooses the two cards of a turn. It only learns an identity after
// flipping the card.
type player struct {
	strategy Strategy
	rng      *core.RNG
	seen     map[int]string
}

func newPlayer(strategy Strategy, rng *core.RNG) *player {
	return &player{strategy: strategy, rng: rng, seen: map[int]string{}}
}

func (p *player) observe(index int, identity string) {
	if p.strategy == StrategyPerfect {
		p.seen[index] = identity
	}
}

func (p *player) hidden(s *memory.Session) []int {
	return lo.Filter(lo.Range(s.Len()), func(i int, _ int) bool {
		c := s.Card(i)
		return !c.Matched && !c.FaceUp
	})
}

func (p *player) unseen(s *memory.Session) []int {
	return lo.Filter(p.hidden(s), func(i int, _ int) bool {
		_, ok := p.seen[i]
		return !ok
	})
}

// knownPair returns two remembered, unmatched cards with the same identity.
func (p *player) knownPair(s *memory.Session) (int, int, bool) {
	byName := map[string]int{}
	for _, i := range p.hidden(s) {
		name, ok := p.seen[i]
		if !ok {
			continue
		}
		if j, ok := byName[name]; ok {
			return j, i, true
		}
		byName[name] = i
	}
	return 0, 0, false
}

func (p *player) pick(candidates []int) int {
	return candidates[p.rng.IntN(len(candidates))]
}

// first returns the opening card of a turn, or -1 when nothing is left.
func (p *player) first(s *memory.Session) int {
	hidden := p.hidden(s)
	if len(hidden) == 0 {
		return -1
	}
	if p.strategy != StrategyPerfect {
		return p.pick(hidden)
	}
	if a, _, ok := p.knownPair(s); ok {
		return a
	}
	if unseen := p.unseen(s); len(unseen) > 0 {
		return p.pick(unseen)
	}
	return p.pick(hidden)
}

// second returns the card to pair with first.
func (p *player) second(s *memory.Session, first int) int {
	hidden := lo.Without(p.hidden(s), first)
	if len(hidden) == 0 {
		return -1
	}
	if p.strategy != StrategyPerfect {
		return p.pick(hidden)
	}
	want := s.Card(first).Identity
	for _, i := range hidden {
		if name, ok := p.seen[i]; ok && name == want {
			return i
		}
	}
	if unseen := lo.Without(p.unseen(s), first); len(unseen) > 0 {
		return p.pick(unseen)
	}
	return p.pick(hidden)
}
