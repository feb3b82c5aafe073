package autoplay

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"perfect", "random"} {
		if _, err := ParseStrategy(name); err != nil {
			t.Fatalf("expected %q to parse: %v", name, err)
		}
	}
	if _, err := ParseStrategy("psychic"); err == nil {
		t.Fatal("expected an unknown strategy to fail")
	}
}

func TestPerfectPlayerBounds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		res, err := Play(StrategyPerfect, 8, seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.Attempts < 8 || res.Attempts > 16 {
			t.Fatalf("seed %d: perfect memory took %d attempts for 8 pairs", seed, res.Attempts)
		}
		if res.Elapsed <= 0 {
			t.Fatalf("seed %d: expected simulated time to pass", seed)
		}
	}
}

func TestRandomPlayerFinishes(t *testing.T) {
	res, err := Play(StrategyRandom, 5, 3)
	if err != nil {
		t.Fatalf("random play failed: %v", err)
	}
	if res.Attempts < 5 {
		t.Fatalf("expected at least 5 attempts, got %d", res.Attempts)
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{Runs: 24, Pairs: 6, Workers: 4, Strategy: StrategyPerfect, Seed: 99}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different batches")
	}
	for i, r := range a {
		if r.Run != i || r.Seed != 99+int64(i) {
			t.Fatalf("result %d misplaced: %+v", i, r)
		}
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Runs: 4, Pairs: 5, Workers: 2, Strategy: StrategyRandom, Seed: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Result{{Attempts: 8}, {Attempts: 12}, {Attempts: 10}})
	if sum.Runs != 3 || sum.Min != 8 || sum.Max != 12 || sum.Mean != 10 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("expected empty summary, got %+v", got)
	}
}
