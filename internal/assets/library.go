// Package assets loads card artwork and generates placeholders for anything
// that is missing or cannot be decoded.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"log"
	"strings"

	"brawl-memory/internal/core"

	xdraw "golang.org/x/image/draw"
)

// BackFile is the card back image name.
const BackFile = "card_back.png"

var extensions = []string{".png", ".jpg", ".jpeg"}

// FileStem maps an identity to its file name without extension:
// lowercase with spaces replaced by underscores.
func FileStem(identity string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(identity)), " ", "_")
}

// Library resolves identities to card-sized images and caches the result.
type Library struct {
	fsys  fs.FS
	size  core.Size
	faces map[string]image.Image
	back  image.Image
}

// NewLibrary reads artwork from fsys. A nil fsys serves placeholders only.
func NewLibrary(fsys fs.FS, card core.Size) *Library {
	return &Library{fsys: fsys, size: card, faces: map[string]image.Image{}}
}

// Front returns the artwork for identity, or a placeholder.
func (l *Library) Front(identity string) image.Image {
	if img, ok := l.faces[identity]; ok {
		return img
	}
	img, err := l.loadFront(identity)
	if err != nil {
		log.Printf("assets: %v; using placeholder for %q", err, identity)
		img = Placeholder(identity, l.size)
	}
	l.faces[identity] = img
	return img
}

// Back returns the card back, or a generated one.
func (l *Library) Back() image.Image {
	if l.back != nil {
		return l.back
	}
	img, err := l.decode(BackFile)
	if err != nil {
		log.Printf("assets: %v; using generated card back", err)
		l.back = PlaceholderBack(l.size)
		return l.back
	}
	l.back = Stretch(img, l.size)
	return l.back
}

func (l *Library) loadFront(identity string) (image.Image, error) {
	stem := FileStem(identity)
	if stem == "" {
		return nil, errors.New("empty identity")
	}
	var errs []error
	for _, ext := range extensions {
		img, err := l.decode(stem + ext)
		if err == nil {
			return Fit(img, l.size), nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (l *Library) decode(name string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("read %s: %w", name, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Fit scales src to fit inside size preserving its aspect ratio and centres
// it on a transparent canvas.
func Fit(src image.Image, size core.Size) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 || size.W <= 0 || size.H <= 0 {
		return dst
	}
	ratio := min(float64(size.W)/float64(sb.Dx()), float64(size.H)/float64(sb.Dy()))
	w := max(1, int(float64(sb.Dx())*ratio))
	h := max(1, int(float64(sb.Dy())*ratio))
	x := (size.W - w) / 2
	y := (size.H - h) / 2
	xdraw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, xdraw.Over, nil)
	return dst
}

// Stretch scales src to exactly size.
func Stretch(src image.Image, size core.Size) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
