//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"brawl-memory/internal/fonts"
	"brawl-memory/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dimColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func textWidth(s string, scale int) int {
	return text.BoundString(fonts.Face(scale), s).Dx()
}

// drawText paints s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y, scale int, clr color.Color) {
	if s == "" {
		return
	}
	face := fonts.Face(scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y+face.Metrics().Ascent.Ceil()))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}

// drawCentered paints s horizontally centred on cx.
func drawCentered(dst *ebiten.Image, s string, cx, y, scale int, clr color.Color) {
	drawText(dst, s, cx-textWidth(s, scale)/2, y, scale, clr)
}

func drawButton(dst *ebiten.Image, b Button, hovered bool) {
	fill := b.Fill
	if hovered {
		fill = b.Hover
	}
	r := b.Rect
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, textColor, false)
}

func drawButtonLabel(dst *ebiten.Image, b Button, label string) {
	r := b.Rect
	h := fonts.Face(b.Scale).Metrics().Height.Ceil()
	drawCentered(dst, label, r.Min.X+r.Dx()/2, r.Min.Y+(r.Dy()-h)/2, b.Scale, textColor)
}

// drawButtons paints every button, highlighting the one under the cursor.
func drawButtons(dst *ebiten.Image, buttons []Button, p *i18n.Printer) {
	mx, my := ebiten.CursorPosition()
	for _, b := range buttons {
		drawButton(dst, b, b.Contains(mx, my))
		drawButtonLabel(dst, b, b.Text(p))
	}
}

func fillScreen(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
