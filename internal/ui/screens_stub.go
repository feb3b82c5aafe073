//go:build !ebiten

package ui

import (
	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"
)

// Menu is a no-op placeholder for headless builds.
type Menu struct{}

// NewMenu constructs a stub menu.
func NewMenu(*i18n.Printer, core.Size) *Menu { return &Menu{} }

// Update never acts in the headless build.
func (m *Menu) Update() Action { return ActionNone }

// Draw is a no-op placeholder.
func (m *Menu) Draw(any) {}

// Selector is a no-op placeholder for headless builds.
type Selector struct{}

// NewSelector constructs a stub selector.
func NewSelector(*i18n.Printer, core.Size, ParamTarget) *Selector { return &Selector{} }

// Update never acts in the headless build.
func (s *Selector) Update() Action { return ActionNone }

// Draw is a no-op placeholder.
func (s *Selector) Draw(any) {}
