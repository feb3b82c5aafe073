package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// ParameterControl describes an adjustable parameter that should be exposed
// with +/- buttons. Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterGetter reads the current value of an integer parameter.
type IntParameterGetter interface {
	IntParameter(key string) (int, bool)
}

// IntParameterSetter allows UI interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// ClampInt applies the control's bounds to v.
func (c ParameterControl) ClampInt(v int) int {
	if c.HasMin && v < int(c.Min) {
		v = int(c.Min)
	}
	if c.HasMax && v > int(c.Max) {
		v = int(c.Max)
	}
	return v
}

// IntStep returns the control's step as an int, defaulting to 1.
func (c ParameterControl) IntStep() int {
	step := int(c.Step)
	if step <= 0 {
		step = 1
	}
	return step
}
