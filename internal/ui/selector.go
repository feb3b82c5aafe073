//go:build ebiten

package ui

import (
	"strconv"

	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Selector is the difficulty screen: +/- buttons around the pair count.
type Selector struct {
	printer *i18n.Printer
	screen  core.Size
	target  ParamTarget
	key     string
	buttons []Button
}

// NewSelector builds a selector adjusting the first control of target.
func NewSelector(printer *i18n.Printer, screen core.Size, target ParamTarget) *Selector {
	s := &Selector{printer: printer, screen: screen, target: target, buttons: SelectorButtons(screen)}
	if controls := target.ParameterControls(); len(controls) > 0 {
		s.key = controls[0].Key
	}
	return s
}

// Update handles input and returns ActionStart or ActionBack when the screen
// should change.
func (s *Selector) Update() Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		Adjust(s.target, s.key, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		Adjust(s.target, s.key, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ActionStart
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ActionBack
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	switch action := ActionAt(s.buttons, mx, my); action {
	case ActionDecrement:
		Adjust(s.target, s.key, -1)
	case ActionIncrement:
		Adjust(s.target, s.key, 1)
	case ActionStart, ActionBack:
		return action
	}
	return ActionNone
}

// Draw paints the selector.
func (s *Selector) Draw(screen *ebiten.Image) {
	p := s.printer
	mid := s.screen.W / 2
	drawCentered(screen, p.T(i18n.KeySelectTitle), mid, 100, 3, textColor)
	drawCentered(screen, p.T(i18n.KeySelectSubtitle), mid, 200, 2, dimColor)

	value, _ := s.target.IntParameter(s.key)
	drawCentered(screen, strconv.Itoa(value), mid, 305, 4, textColor)

	mx, my := ebiten.CursorPosition()
	for _, b := range s.buttons {
		enabled := true
		switch b.Action {
		case ActionDecrement:
			enabled = CanAdjust(s.target, s.key, -1)
		case ActionIncrement:
			enabled = CanAdjust(s.target, s.key, 1)
		}
		drawButton(screen, b, enabled && b.Contains(mx, my))
		drawButtonLabel(screen, b, b.Text(p))
	}

	d := DifficultyFor(value)
	drawCentered(screen, p.T(d.LabelKey()), mid, 600, 3, d.Color())
	drawCentered(screen, p.T(d.DescriptionKey()), mid, 650, 2, dimColor)
}
