package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"
)

// Action is what a click or key press on a screen asks the app to do.
type Action int

const (
	ActionNone Action = iota
	ActionMemory
	ActionChallenge
	ActionExit
	ActionDecrement
	ActionIncrement
	ActionStart
	ActionBack
)

// Button is a clickable labelled rectangle. LabelKey names a catalog
// message; Label is literal text used when LabelKey is empty.
type Button struct {
	Rect     image.Rectangle
	LabelKey string
	Label    string
	Action   Action
	Fill     color.RGBA
	Hover    color.RGBA
	Scale    int
}

// Contains reports whether (x, y) hits the button.
func (b Button) Contains(x, y int) bool { return core.PointInRect(x, y, b.Rect) }

// Text returns the button's caption in the printer's language.
func (b Button) Text(p *i18n.Printer) string {
	if b.LabelKey == "" {
		return b.Label
	}
	return p.T(b.LabelKey)
}

// ActionAt returns the action of the first button under (x, y).
func ActionAt(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// MenuButtons lays out the start menu for a screen of the given size.
func MenuButtons(screen core.Size) []Button {
	const w, h = 300, 80
	x := (screen.W - w) / 2
	return []Button{
		{Rect: image.Rect(x, 250, x+w, 250+h), LabelKey: i18n.KeyMenuMemory, Action: ActionMemory,
			Fill: color.RGBA{R: 70, G: 80, B: 200, A: 255}, Hover: color.RGBA{R: 100, G: 120, B: 255, A: 255}, Scale: 2},
		{Rect: image.Rect(x, 350, x+w, 350+h), LabelKey: i18n.KeyMenuChallenge, Action: ActionChallenge,
			Fill: color.RGBA{R: 200, G: 70, B: 70, A: 255}, Hover: color.RGBA{R: 255, G: 100, B: 100, A: 255}, Scale: 2},
		{Rect: image.Rect(x, 450, x+w, 450+h), LabelKey: i18n.KeyMenuExit, Action: ActionExit,
			Fill: color.RGBA{R: 70, G: 70, B: 70, A: 255}, Hover: color.RGBA{R: 100, G: 100, B: 100, A: 255}, Scale: 2},
	}
}

// SelectorButtons lays out the difficulty selector controls.
func SelectorButtons(screen core.Size) []Button {
	mid := screen.W / 2
	return []Button{
		{Rect: image.Rect(mid-100, 300, mid-50, 350), Label: "-", Action: ActionDecrement,
			Fill: color.RGBA{R: 200, G: 50, B: 50, A: 255}, Hover: color.RGBA{R: 255, G: 100, B: 100, A: 255}, Scale: 3},
		{Rect: image.Rect(mid+50, 300, mid+100, 350), Label: "+", Action: ActionIncrement,
			Fill: color.RGBA{R: 50, G: 200, B: 50, A: 255}, Hover: color.RGBA{R: 100, G: 255, B: 100, A: 255}, Scale: 3},
		{Rect: image.Rect(mid-100, 400, mid+100, 460), LabelKey: i18n.KeySelectStart, Action: ActionStart,
			Fill: color.RGBA{R: 70, G: 120, B: 200, A: 255}, Hover: color.RGBA{R: 100, G: 150, B: 255, A: 255}, Scale: 2},
		{Rect: image.Rect(mid-75, 500, mid+75, 550), LabelKey: i18n.KeySelectBack, Action: ActionBack,
			Fill: color.RGBA{R: 100, G: 100, B: 100, A: 255}, Hover: color.RGBA{R: 150, G: 150, B: 150, A: 255}, Scale: 2},
	}
}

// Difficulty groups pair counts into labelled bands.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyFor returns the band for a pair count: up to 6 is easy, up to 8
// medium, anything above hard.
func DifficultyFor(pairs int) Difficulty {
	switch {
	case pairs <= 6:
		return DifficultyEasy
	case pairs <= 8:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// LabelKey returns the catalog key of the band's name.
func (d Difficulty) LabelKey() string {
	switch d {
	case DifficultyEasy:
		return i18n.KeyEasy
	case DifficultyMedium:
		return i18n.KeyMedium
	default:
		return i18n.KeyHard
	}
}

// DescriptionKey returns the catalog key of the band's description.
func (d Difficulty) DescriptionKey() string {
	switch d {
	case DifficultyEasy:
		return i18n.KeyEasyDesc
	case DifficultyMedium:
		return i18n.KeyMediumDesc
	default:
		return i18n.KeyHardDesc
	}
}

// Color returns the band's label colour.
func (d Difficulty) Color() color.RGBA {
	switch d {
	case DifficultyEasy:
		return color.RGBA{R: 100, G: 255, B: 100, A: 255}
	case DifficultyMedium:
		return color.RGBA{R: 255, G: 255, B: 100, A: 255}
	default:
		return color.RGBA{R: 255, G: 100, B: 100, A: 255}
	}
}

// FormatClock renders a duration as mm:ss.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
