//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay dims the board and shows the end-of-game banner.
type Overlay struct {
	printer *i18n.Printer
	screen  core.Size
}

// NewOverlay constructs an overlay for a screen of the given size.
func NewOverlay(printer *i18n.Printer, screen core.Size) *Overlay {
	return &Overlay{printer: printer, screen: screen}
}

// Draw renders the banner once the mode reports it is over.
func (o *Overlay) Draw(screen *ebiten.Image, stats core.Stats, challenge bool) {
	if o == nil || !stats.Over {
		return
	}
	fillScreen(screen, image.Rect(0, 0, o.screen.W, o.screen.H), shade)

	p := o.printer
	title := p.T(i18n.KeyWon)
	if challenge {
		title = p.T(i18n.KeyOver)
	}
	mid := o.screen.W / 2
	y := o.screen.H/2 - 110
	drawCentered(screen, title, mid, y, 3, targetColor)
	y += 60
	drawCentered(screen, p.T(i18n.KeyTime, FormatClock(stats.Elapsed)), mid, y, 2, textColor)
	y += 36
	if challenge {
		drawCentered(screen, p.T(i18n.KeyScore, stats.Score, stats.Total), mid, y, 2, textColor)
	} else {
		drawCentered(screen, p.T(i18n.KeyAttempts, stats.Attempts), mid, y, 2, textColor)
	}
	y += 56
	drawCentered(screen, p.T(i18n.KeyReplay), mid, y, 2, dimColor)
	y += 32
	drawCentered(screen, p.T(i18n.KeyBackToSel), mid, y, 2, dimColor)
}

var shade = color.RGBA{R: 0, G: 0, B: 0, A: 180}
