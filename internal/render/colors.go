package render

import "image/color"

var (
	// Background is the table colour behind the board.
	Background = color.RGBA{R: 0, G: 110, B: 40, A: 255}
	// MismatchOutline frames a pair that is about to flip back.
	MismatchOutline = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	// TargetFrame marks the card to find in the challenge.
	TargetFrame = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	// MatchedAlpha is the opacity of matched cards.
	MatchedAlpha = 0.5
)

const outlineWidth = 3

// CardFace selects which image a card shows and how opaque it is.
func CardFace(faceUp, matched bool) (front bool, alpha float64) {
	switch {
	case matched:
		return true, MatchedAlpha
	case faceUp:
		return true, 1
	default:
		return false, 1
	}
}
