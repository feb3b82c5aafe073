//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD renders the status band above the card grid.
type HUD struct {
	printer *i18n.Printer
	width   int
	height  int
}

// NewHUD constructs a HUD for a band of the given size.
func NewHUD(printer *i18n.Printer, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &HUD{printer: printer, width: width, height: height}
}

// Height returns the band height reserved above the grid.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return h.height
}

// Draw paints the stats of the running mode.
func (h *HUD) Draw(screen *ebiten.Image, stats core.Stats, challenge bool) {
	if h == nil || h.width <= 0 {
		return
	}
	p := h.printer
	drawText(screen, p.T(i18n.KeyScore, stats.Score, stats.Total), hudPadding, hudPadding, 2, textColor)
	clock := p.T(i18n.KeyTime, FormatClock(stats.Elapsed))
	drawText(screen, clock, h.width-hudPadding-textWidth(clock, 2), hudPadding, 2, textColor)

	second := p.T(i18n.KeyAttempts, stats.Attempts)
	if challenge {
		second = p.T(i18n.KeyRound, stats.Attempts, stats.Total)
	}
	drawText(screen, second, hudPadding, hudPadding+hudLine, 2, dimColor)
	if challenge && stats.Target != "" && stats.Status != core.StatusPreview {
		drawCentered(screen, p.T(i18n.KeyTarget, stats.Target), h.width/2, hudPadding+hudLine, 2, targetColor)
	}

	if msg, clr, ok := h.statusMessage(stats.Status); ok {
		drawCentered(screen, msg, h.width/2, hudPadding, 2, clr)
	}
	if stats.Countdown > 0 && !stats.Over {
		h.drawCountdown(screen, stats.Countdown)
	}
}

func (h *HUD) statusMessage(status core.Status) (string, color.RGBA, bool) {
	switch status {
	case core.StatusPreview:
		return h.printer.T(i18n.KeyPreview), targetColor, true
	case core.StatusCorrect:
		return h.printer.T(i18n.KeyCorrect), correctColor, true
	case core.StatusWrong:
		return h.printer.T(i18n.KeyWrong), wrongColor, true
	default:
		return "", color.RGBA{}, false
	}
}

// drawCountdown paints a clock icon followed by a bar that shrinks as the
// remaining fraction falls.
func (h *HUD) drawCountdown(screen *ebiten.Image, remaining float64) {
	if remaining > 1 {
		remaining = 1
	}
	y := float32(hudPadding + 2*hudLine + 4)
	cx := float32(hudPadding + clockRadius)
	cy := y + barHeight/2
	vector.DrawFilledCircle(screen, cx, cy, clockRadius, barBack, true)
	vector.StrokeCircle(screen, cx, cy, clockRadius, 2, textColor, true)
	angle := 2*math.Pi*(1-remaining) - math.Pi/2
	hx := cx + float32(math.Cos(angle))*(clockRadius-3)
	hy := cy + float32(math.Sin(angle))*(clockRadius-3)
	vector.StrokeLine(screen, cx, cy, hx, hy, 2, textColor, true)

	x := cx + clockRadius + 10
	w := float32(h.width-hudPadding) - x
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, barHeight, barBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(remaining), barHeight, barFill, false)
	vector.StrokeRect(screen, x, y, w, barHeight, 1, textColor, false)
}

var (
	targetColor  = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	correctColor = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	wrongColor   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	barBack      = color.RGBA{R: 40, G: 40, B: 60, A: 255}
	barFill      = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

const (
	hudPadding  = 12
	hudLine     = 30
	barHeight   = 14
	clockRadius = 10
)
