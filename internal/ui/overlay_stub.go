//go:build !ebiten

package ui

import (
	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*i18n.Printer, core.Size) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Stats, bool) {}
