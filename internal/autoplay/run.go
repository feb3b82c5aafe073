// Package autoplay plays memory sessions without a window to measure how many
// attempts a strategy needs.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brawl-memory/internal/core"
	"brawl-memory/internal/memory"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ErrStuck is returned when a session does not finish within its turn budget.
var ErrStuck = errors.New("session did not finish")

// Options configures a batch of simulated games.
type Options struct {
	Runs     int
	Pairs    int
	Workers  int
	Strategy Strategy
	Seed     int64
}

// Result is the outcome of one simulated game.
type Result struct {
	Run      int
	Seed     int64
	Attempts int
	Elapsed  time.Duration
}

// Summary aggregates attempts across results.
type Summary struct {
	Runs int
	Min  int
	Max  int
	Mean float64
}

// Play runs one session to completion and returns its attempts.
func Play(strategy Strategy, pairs int, seed int64) (Result, error) {
	clock := core.NewManualClock(time.Unix(0, 0))
	cfg := memory.DefaultConfig()
	cfg.Pairs = pairs
	s := memory.New(cfg, clock, seed)
	p := newPlayer(strategy, core.NewRNG(seed^0x5eed))

	limit := 1000 * s.Len()
	for turn := 0; !s.Won(); turn++ {
		if turn >= limit {
			return Result{}, fmt.Errorf("seed %d after %d turns: %w", seed, turn, ErrStuck)
		}
		a := p.first(s)
		if a < 0 {
			return Result{}, fmt.Errorf("seed %d: %w", seed, ErrStuck)
		}
		s.Flip(a)
		p.observe(a, s.Card(a).Identity)
		b := p.second(s, a)
		if b < 0 {
			return Result{}, fmt.Errorf("seed %d: %w", seed, ErrStuck)
		}
		s.Flip(b)
		p.observe(b, s.Card(b).Identity)
		// one simulated second per flip
		clock.Advance(2 * time.Second)
		if s.Waiting() {
			clock.Advance(cfg.FlipDelay)
			s.Update()
		}
	}
	return Result{Seed: seed, Attempts: s.Attempts(), Elapsed: s.Elapsed()}, nil
}

// Run plays opts.Runs games across at most opts.Workers goroutines. Run i uses
// seed opts.Seed+i, so a batch is reproducible for a fixed seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, nil
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	base := core.ResolveSeed(opts.Seed)
	results := make([]Result, opts.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Play(opts.Strategy, opts.Pairs, base+int64(i))
			if err != nil {
				return err
			}
			res.Run = i
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize reports min, max and mean attempts.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	attempts := lo.Map(results, func(r Result, _ int) int { return r.Attempts })
	return Summary{
		Runs: len(results),
		Min:  lo.Min(attempts),
		Max:  lo.Max(attempts),
		Mean: float64(lo.Sum(attempts)) / float64(len(attempts)),
	}
}
