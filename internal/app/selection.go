package app

import "brawl-memory/internal/core"

// Scene is the screen currently shown.
type Scene int

const (
	SceneMenu Scene = iota
	SceneSelect
	ScenePlay
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneSelect:
		return "select"
	default:
		return "play"
	}
}

// Selection holds the choices made before a game starts: which mode and how
// many characters. It backs the difficulty selector's +/- controls.
type Selection struct {
	Mode  string
	Pairs int
}

// ParameterControls exposes the pair count as an adjustable control.
func (s *Selection) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{PairsControl()}
}

// IntParameter reads the pair count.
func (s *Selection) IntParameter(key string) (int, bool) {
	if key != "pairs" {
		return 0, false
	}
	return s.Pairs, true
}

// SetIntParameter updates the pair count within the control's bounds.
func (s *Selection) SetIntParameter(key string, value int) bool {
	if key != "pairs" {
		return false
	}
	value = PairsControl().ClampInt(value)
	if value == s.Pairs {
		return false
	}
	s.Pairs = value
	return true
}

// Adjust moves the pair count by delta steps.
func (s *Selection) Adjust(delta int) bool {
	return s.SetIntParameter("pairs", s.Pairs+delta*PairsControl().IntStep())
}
