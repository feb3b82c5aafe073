//go:build ebiten

package ui

import (
	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Menu is the start screen offering the two modes.
type Menu struct {
	printer *i18n.Printer
	screen  core.Size
	buttons []Button
}

// NewMenu lays out the menu for a screen of the given size.
func NewMenu(printer *i18n.Printer, screen core.Size) *Menu {
	return &Menu{printer: printer, screen: screen, buttons: MenuButtons(screen)}
}

// Update returns the action chosen this frame. Esc asks to exit.
func (m *Menu) Update() Action {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ActionExit
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	return ActionAt(m.buttons, mx, my)
}

// Draw paints the menu, describing the mode under the cursor.
func (m *Menu) Draw(screen *ebiten.Image) {
	p := m.printer
	mid := m.screen.W / 2
	drawCentered(screen, p.T(i18n.KeyMenuTitle), mid, 120, 4, targetColor)
	drawButtons(screen, m.buttons, p)

	mx, my := ebiten.CursorPosition()
	var desc string
	switch ActionAt(m.buttons, mx, my) {
	case ActionMemory:
		desc = p.T(i18n.KeyMenuMemoryDesc)
	case ActionChallenge:
		desc = p.T(i18n.KeyMenuChallengeDesc)
	}
	drawCentered(screen, desc, mid, 580, 1, dimColor)
}
