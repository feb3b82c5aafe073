// Package fonts provides the interface typeface at any pixel size.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// BaseSize is the pixel size of unscaled text.
const BaseSize = 13

var (
	regular = mustParse(goregular.TTF)

	mu    sync.Mutex
	faces = map[int]font.Face{}
)

func mustParse(ttf []byte) *sfnt.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse embedded font: %v", err))
	}
	return f
}

// Face returns the regular face at BaseSize*scale pixels. Faces are cached.
func Face(scale int) font.Face {
	if scale <= 0 {
		scale = 1
	}
	mu.Lock()
	defer mu.Unlock()
	if f, ok := faces[scale]; ok {
		return f
	}
	f, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    float64(BaseSize * scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("build face at scale %d: %v", scale, err))
	}
	faces[scale] = f
	return f
}

// HasGlyph reports whether the typeface draws r rather than a fallback box.
func HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := regular.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Missing returns the runes of s the typeface cannot draw.
func Missing(s string) []rune {
	var out []rune
	for _, r := range s {
		if !HasGlyph(r) {
			out = append(out, r)
		}
	}
	return out
}
