package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"
	"brawl-memory/internal/memory"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// MinPairs and MaxPairs bound the difficulty selector.
	MinPairs = 5
	MaxPairs = 10
)

// Config represents the command-line and environment parameters for the
// application. Precedence: flags, environment, .env file, defaults.
type Config struct {
	Mode      string        `env:"MEMORY_MODE"`
	Pairs     int           `env:"MEMORY_PAIRS"`
	Columns   int           `env:"MEMORY_COLUMNS"`
	Seed      int64         `env:"MEMORY_SEED"`
	AssetsDir string        `env:"MEMORY_ASSETS_DIR"`
	Lang      string        `env:"MEMORY_LANG"`
	TPS       int           `env:"MEMORY_TPS"`
	FlipDelay time.Duration `env:"MEMORY_FLIP_DELAY"`
	Width     int           `env:"MEMORY_WIDTH"`
	Height    int           `env:"MEMORY_HEIGHT"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pairs:     memory.DefaultPairs,
		AssetsDir: "assets/images",
		Lang:      i18n.BaseLocale,
		TPS:       60,
		FlipDelay: memory.DefaultFlipDelay,
		Width:     1024,
		Height:    768,
	}
}

// LoadEnv applies the given .env files (or ./.env when none are named) and
// then the process environment on top of the current values. A missing
// default .env file is not an error.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env files: %w", err)
		}
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "game mode to open directly (memory, challenge); empty shows the menu")
	fs.IntVar(&c.Pairs, "pairs", c.Pairs, "number of distinct characters on the board")
	fs.IntVar(&c.Columns, "cols", c.Columns, "grid columns (0 picks a square-ish grid)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "shuffle seed (0 seeds from the clock)")
	fs.StringVar(&c.AssetsDir, "assets", c.AssetsDir, "directory holding character artwork")
	fs.StringVar(&c.Lang, "lang", c.Lang, "interface language")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.FlipDelay, "flip-delay", c.FlipDelay, "how long a mismatched pair stays visible")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
}

// Validate normalises ranges and rejects unknown modes and languages.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, ok := core.Modes()[c.Mode]; !ok {
			return fmt.Errorf("unknown mode %q (available: %v)", c.Mode, core.ModeNames())
		}
	}
	if _, err := i18n.ParseTag(c.Lang); err != nil {
		return err
	}
	c.Pairs = PairsControl().ClampInt(c.Pairs)
	if c.Columns < 0 {
		c.Columns = 0
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.FlipDelay <= 0 {
		c.FlipDelay = memory.DefaultFlipDelay
	}
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 768
	}
	return nil
}

// PairsControl describes the difficulty selector's adjustable value.
func PairsControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    "pairs",
		Label:  "Characters",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    MinPairs,
		Max:    MaxPairs,
		HasMin: true,
		HasMax: true,
	}
}
