package app

import (
	"image"

	"brawl-memory/internal/core"
)

const (
	// CardWidth and CardHeight are the largest card size drawn.
	CardWidth  = 110
	CardHeight = 150
	// CardPadding is the gap between neighbouring cards.
	CardPadding = 16
	// HUDHeight is the band above the grid reserved for the HUD.
	HUDHeight = 110
	// TargetWidth and TargetHeight size the challenge's face-up target card.
	TargetWidth  = 66
	TargetHeight = 90
	// TargetBand is the extra room below the HUD the target card occupies.
	TargetBand = TargetHeight + CardPadding
)

// FitCard shrinks the card size, keeping its proportions, until a grid of
// count cards fits below top.
func FitCard(count, cols int, screen core.Size, top int) core.Size {
	card := core.Size{W: CardWidth, H: CardHeight}
	if count <= 0 {
		return card
	}
	cols = core.Columns(count, cols)
	rows := (count + cols - 1) / cols
	availW := screen.W - 2*CardPadding - (cols-1)*CardPadding
	availH := screen.H - top - CardPadding - (rows-1)*CardPadding
	scale := 1.0
	if w := float64(availW) / float64(cols*CardWidth); w < scale {
		scale = w
	}
	if h := float64(availH) / float64(rows*CardHeight); h < scale {
		scale = h
	}
	if scale <= 0 {
		return core.Size{W: 1, H: 1}
	}
	card.W = max(1, int(float64(CardWidth)*scale))
	card.H = max(1, int(float64(CardHeight)*scale))
	return card
}

// BoardLayout lays out count cards on the screen below top.
func BoardLayout(count, cols int, screen core.Size, top int) core.Layout {
	return core.NewLayout(count, cols, FitCard(count, cols, screen, top), CardPadding, screen, top)
}

// BoardTop returns where the grid starts: under the HUD band, and under the
// target card when the mode shows one.
func BoardTop(hud int, target bool) int {
	if target {
		return hud + TargetBand
	}
	return hud
}

// TargetRect centres the target card horizontally just below the HUD band.
func TargetRect(screen core.Size, hud int) image.Rectangle {
	x := (screen.W - TargetWidth) / 2
	return image.Rect(x, hud, x+TargetWidth, hud+TargetHeight)
}

// NextSeed picks the seed for the next deal. A configured seed advances
// deterministically so a seeded run still reshuffles on restart; otherwise
// the clock seeds it.
func NextSeed(configured, current int64) int64 {
	if configured == 0 {
		return core.ResolveSeed(0)
	}
	return current + 1
}
