//go:build ebiten

package render

import (
	"image"

	"brawl-memory/internal/assets"
	"brawl-memory/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter uploads card artwork once and draws boards from CardView
// snapshots.
type BoardPainter struct {
	lib    *assets.Library
	fronts map[string]*ebiten.Image
	back   *ebiten.Image
}

// NewBoardPainter wraps an asset library.
func NewBoardPainter(lib *assets.Library) *BoardPainter {
	return &BoardPainter{lib: lib, fronts: map[string]*ebiten.Image{}}
}

// Front returns the uploaded artwork for identity.
func (p *BoardPainter) Front(identity string) *ebiten.Image {
	if img, ok := p.fronts[identity]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(p.lib.Front(identity))
	p.fronts[identity] = img
	return img
}

// Back returns the uploaded card back.
func (p *BoardPainter) Back() *ebiten.Image {
	if p.back == nil {
		p.back = ebiten.NewImageFromImage(p.lib.Back())
	}
	return p.back
}

// Draw renders every card at its layout position.
func (p *BoardPainter) Draw(dst *ebiten.Image, layout core.Layout, cards []core.CardView) {
	for i, card := range cards {
		if i >= layout.Count {
			return
		}
		r := layout.Rect(i)
		front, alpha := CardFace(card.FaceUp, card.Matched)
		img := p.Back()
		if front {
			img = p.Front(card.Identity)
		}
		p.DrawCard(dst, img, r, alpha)
		if card.Highlight {
			Outline(dst, r)
		}
	}
}

// DrawCard blits img into rect with the given opacity.
func (p *BoardPainter) DrawCard(dst, img *ebiten.Image, r image.Rectangle, alpha float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if b.Dx() > 0 && b.Dy() > 0 && (b.Dx() != r.Dx() || b.Dy() != r.Dy()) {
		op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}

// Outline strokes a red frame just outside r.
func Outline(dst *ebiten.Image, r image.Rectangle) {
	const w = outlineWidth
	vector.StrokeRect(dst, float32(r.Min.X-w), float32(r.Min.Y-w), float32(r.Dx()+2*w), float32(r.Dy()+2*w), w, MismatchOutline, false)
}

// Frame strokes the target card's frame just outside r.
func Frame(dst *ebiten.Image, r image.Rectangle) {
	const w = outlineWidth
	vector.StrokeRect(dst, float32(r.Min.X-w), float32(r.Min.Y-w), float32(r.Dx()+2*w), float32(r.Dy()+2*w), w, TargetFrame, false)
}
