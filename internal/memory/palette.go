package memory

import (
	"slices"
	"strings"

	"brawl-memory/internal/core"

	"github.com/samber/lo"
)

// DefaultPalette lists the brawlers available as card identities.
var DefaultPalette = []string{
	"Shelly", "Colt", "Bull", "Jessie", "Brock", "Dynamike",
	"Bo", "Tick", "El Primo", "Barley", "Poco", "Rosa",
}

// NormalizePalette trims names, drops blanks and duplicates, and falls back
// to DefaultPalette when nothing usable remains.
func NormalizePalette(palette []string) []string {
	names := lo.Uniq(lo.FilterMap(palette, func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	}))
	if len(names) == 0 {
		return slices.Clone(DefaultPalette)
	}
	return names
}

// Deal picks pairs identities uniformly from the palette and returns a
// random arrangement holding exactly two copies of each.
func Deal(palette []string, pairs int, rng *core.RNG) []string {
	return Arrange(Choose(palette, pairs, rng), rng)
}

// Choose picks pairs distinct identities uniformly from the palette.
func Choose(palette []string, pairs int, rng *core.RNG) []string {
	names := NormalizePalette(palette)
	pairs = clampPairs(pairs, len(names))
	core.Shuffle(rng, names)
	return names[:pairs]
}

// Arrange returns a random permutation of two copies of each identity.
func Arrange(identities []string, rng *core.RNG) []string {
	deck := make([]string, 0, 2*len(identities))
	deck = append(deck, identities...)
	deck = append(deck, identities...)
	core.Shuffle(rng, deck)
	return deck
}

func clampPairs(pairs, available int) int {
	if pairs < 1 {
		pairs = 1
	}
	if pairs > available {
		pairs = available
	}
	return pairs
}
