package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"brawl-memory/internal/autoplay"
	"brawl-memory/internal/memory"
)

func main() {
	runs := flag.Int("runs", 1000, "games to simulate")
	pairs := flag.Int("pairs", memory.DefaultPairs, "pairs per game")
	strategy := flag.String("strategy", string(autoplay.StrategyPerfect), "player strategy (perfect, random)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first game (0 seeds from the clock)")
	verbose := flag.Bool("v", false, "log every session")
	flag.Parse()

	strat, err := autoplay.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	fmt.Printf("Simulating %d games of %d pairs (%s, %d workers)\n", *runs, *pairs, strat, *workers)
	start := time.Now()
	results, err := autoplay.Run(context.Background(), autoplay.Options{
		Runs:     *runs,
		Pairs:    *pairs,
		Workers:  *workers,
		Strategy: strat,
		Seed:     *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("autoplay: %v", err)
	}
	sum := autoplay.Summarize(results)
	fmt.Printf("attempts min=%d mean=%.2f max=%d (elapsed %s)\n",
		sum.Min, sum.Mean, sum.Max, time.Since(start).Round(time.Millisecond))
}
