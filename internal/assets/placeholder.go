package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"brawl-memory/internal/core"
	"brawl-memory/internal/fonts"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const labelLimit = 8

var (
	placeholderBase   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	placeholderBorder = color.RGBA{A: 255}
	backFill          = color.RGBA{R: 50, G: 50, B: 200, A: 255}
	backBorder        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PlaceholderColor derives a stable colour for name with every channel in
// [55, 255).
func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(sum%200) + 55,
		G: uint8((sum>>8)%200) + 55,
		B: uint8((sum>>16)%200) + 55,
		A: 255,
	}
}

// Placeholder draws a card face for name: grey card, coloured panel, the
// name in the middle and a border.
func Placeholder(name string, size core.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(size.W, 1), max(size.H, 1)))
	fill(img, img.Bounds(), placeholderBase)
	fill(img, img.Bounds().Inset(5), PlaceholderColor(name))
	drawCentered(img, Label(name), placeholderBorder)
	stroke(img, img.Bounds(), 2, placeholderBorder)
	return img
}

// Label shortens name to the first labelLimit runes.
func Label(name string) string {
	if utf8.RuneCountInString(name) <= labelLimit {
		return name
	}
	return string([]rune(name)[:labelLimit])
}

// PlaceholderBack draws a generated card back.
func PlaceholderBack(size core.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(size.W, 1), max(size.H, 1)))
	fill(img, img.Bounds(), backFill)
	drawCentered(img, "BRAWL", backBorder)
	stroke(img, img.Bounds(), 2, backBorder)
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func stroke(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func drawCentered(img *image.RGBA, label string, c color.Color) {
	face := fonts.Face(1)
	m := face.Metrics()
	width := font.MeasureString(face, label).Ceil()
	b := img.Bounds()
	x := b.Min.X + (b.Dx()-width)/2
	y := b.Min.Y + (b.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
