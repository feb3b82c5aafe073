//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"brawl-memory/internal/app"
	_ "brawl-memory/internal/challenge"
	_ "brawl-memory/internal/memory"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg, os.DirFS(cfg.AssetsDir))
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowTitle("Brawl Memory")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
