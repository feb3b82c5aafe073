package core

import (
	"image"
	"math"
)

// Size describes a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Layout places n cards on a grid of fixed-size cells centred on the screen
// below a reserved top band.
type Layout struct {
	Count   int
	Cols    int
	Rows    int
	Card    Size
	Padding int
	Origin  image.Point
}

// Columns resolves the column count for count cells. cols <= 0 picks
// ceil(sqrt(count)); the result is always at least 1.
func Columns(count, cols int) int {
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(count))))
	}
	if cols <= 0 {
		cols = 1
	}
	return cols
}

// NewLayout computes a layout for count cards. cols <= 0 picks ceil(sqrt(count)).
func NewLayout(count, cols int, card Size, padding int, screen Size, top int) Layout {
	if count < 0 {
		count = 0
	}
	cols = Columns(count, cols)
	if padding < 0 {
		padding = 0
	}
	rows := (count + cols - 1) / cols
	l := Layout{Count: count, Cols: cols, Rows: rows, Card: card, Padding: padding}

	gridW := cols*card.W + (cols-1)*padding
	gridH := 0
	if rows > 0 {
		gridH = rows*card.H + (rows-1)*padding
	}
	x := (screen.W - gridW) / 2
	y := top + (screen.H-top-gridH)/2
	if x < 0 {
		x = 0
	}
	if y < top {
		y = top
	}
	l.Origin = image.Pt(x, y)
	return l
}

// Index returns the linear index for (row, col).
func (l Layout) Index(row, col int) int { return row*l.Cols + col }

// Position returns the (row, col) of a linear index.
func (l Layout) Position(index int) (row, col int) {
	return index / l.Cols, index % l.Cols
}

// Rect returns the screen rectangle of the card at index.
func (l Layout) Rect(index int) image.Rectangle {
	row, col := l.Position(index)
	x := l.Origin.X + col*(l.Card.W+l.Padding)
	y := l.Origin.Y + row*(l.Card.H+l.Padding)
	return image.Rect(x, y, x+l.Card.W, y+l.Card.H)
}

// CellAt maps a pointer position to a card index. Clicks in the padding
// between cards or outside the occupied cells miss.
func (l Layout) CellAt(x, y int) (int, bool) {
	if l.Count == 0 {
		return 0, false
	}
	dx := x - l.Origin.X
	dy := y - l.Origin.Y
	if dx < 0 || dy < 0 {
		return 0, false
	}
	strideX := l.Card.W + l.Padding
	strideY := l.Card.H + l.Padding
	col := dx / strideX
	row := dy / strideY
	if col >= l.Cols || row >= l.Rows {
		return 0, false
	}
	if dx%strideX >= l.Card.W || dy%strideY >= l.Card.H {
		return 0, false
	}
	idx := l.Index(row, col)
	if idx >= l.Count {
		return 0, false
	}
	return idx, true
}

// PointInRect reports whether (x, y) lies inside rect.
func PointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
