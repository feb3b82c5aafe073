package core

import (
	"sort"
	"time"
)

// CardView is the render-facing snapshot of one card.
type CardView struct {
	Identity string
	FaceUp   bool
	Matched  bool
	// Highlight marks cards involved in a pending mismatch or a wrong pick.
	Highlight bool
}

// Status tells the HUD what the current wait, if any, is for.
type Status int

const (
	StatusIdle Status = iota
	StatusMismatch
	StatusPreview
	StatusCorrect
	StatusWrong
)

// Stats is the HUD-facing snapshot of a running mode.
type Stats struct {
	Score    int
	Total    int
	Attempts int
	Elapsed  time.Duration
	// Countdown is the fraction of the current wait left, 0 when idle.
	Countdown float64
	// Target is the identity to find in modes that have one.
	Target string
	Status Status
	Over   bool
}

// Mode is the contract every playable game mode implements. Modes are driven
// by the frame loop: Click for input, Update once per frame, then the
// renderer reads Cards and Stats.
type Mode interface {
	Name() string
	Reset(seed int64)
	Update()
	Click(index int)
	Cards() []CardView
	Stats() Stats
}

// ModeConfig carries the settings a mode factory needs.
type ModeConfig struct {
	Seed      int64
	Pairs     int
	Columns   int
	FlipDelay time.Duration
	Clock     Clock
	Palette   []string
}

// Factory constructs a Mode from a configuration.
type Factory func(cfg ModeConfig) Mode

var modes = map[string]Factory{}

// Register adds a mode factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	modes[name] = f
}

// Modes exposes the registry of available mode factories.
func Modes() map[string]Factory {
	return modes
}

// ModeNames returns the registered mode names in sorted order.
func ModeNames() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
