package ui

import "brawl-memory/internal/core"

// ParamTarget is anything whose integer controls the selector can adjust.
type ParamTarget interface {
	core.ParameterControlsProvider
	core.IntParameterGetter
	core.IntParameterSetter
}

func findControl(target ParamTarget, key string) (core.ParameterControl, bool) {
	for _, ctrl := range target.ParameterControls() {
		if ctrl.Key == key && ctrl.Type == core.ParamTypeInt {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

// CanAdjust reports whether one step in direction stays within the control's
// bounds.
func CanAdjust(target ParamTarget, key string, direction int) bool {
	if target == nil || direction == 0 {
		return false
	}
	ctrl, ok := findControl(target, key)
	if !ok {
		return false
	}
	value, ok := target.IntParameter(key)
	if !ok {
		return false
	}
	next := value + direction*ctrl.IntStep()
	return ctrl.ClampInt(next) == next
}

// Adjust moves the control one step in direction, clamped to its bounds.
func Adjust(target ParamTarget, key string, direction int) bool {
	if target == nil || direction == 0 {
		return false
	}
	ctrl, ok := findControl(target, key)
	if !ok {
		return false
	}
	value, ok := target.IntParameter(key)
	if !ok {
		return false
	}
	next := ctrl.ClampInt(value + direction*ctrl.IntStep())
	if next == value {
		return false
	}
	return target.SetIntParameter(key, next)
}
