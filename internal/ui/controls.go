package ui

import (
	"image"
	"math"
	"strconv"

	"iris/internal/core"
)

// Source is what the parameter panel reads from. Setters are discovered
// through the core setter interfaces.
type Source interface {
	Parameters() core.ParameterSnapshot
}

// Panel holds the control rows of the HUD and applies +/- adjustments. It has
// no drawing code so it can be driven headless.
type Panel struct {
	src   Source
	width int

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	boolSetter  core.BoolParameterSetter
	snapshot    core.ParameterSnapshot
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewPanel lays out the controls src advertises for a panel of the given
// width.
func NewPanel(src Source, width int) *Panel {
	p := &Panel{src: src, width: max(width, 0)}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
		p.layout()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	if setter, ok := src.(core.BoolParameterSetter); ok {
		p.boolSetter = setter
	}
	return p
}

// Refresh re-reads the parameter snapshot.
func (p *Panel) Refresh() {
	if p.src == nil {
		p.snapshot = core.ParameterSnapshot{}
		return
	}
	p.snapshot = p.src.Parameters()
	values := map[string]core.Parameter{}
	for _, group := range p.snapshot.Groups {
		for _, param := range group.Params {
			values[param.Key] = param
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := values[state.control.Key]
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
		default:
			continue
		}
		state.hasValue = true
	}
}

// Summary returns the summary line of the first group that has one.
func (p *Panel) Summary() string {
	for _, g := range p.snapshot.Groups {
		if g.Summary != "" {
			return g.Summary
		}
	}
	return ""
}

// Len returns the number of control rows.
func (p *Panel) Len() int { return len(p.controls) }

// Value returns the formatted value of row i.
func (p *Panel) Value(i int) string {
	if i < 0 || i >= len(p.controls) {
		return ""
	}
	return p.controls[i].value
}

// Click applies a click at panel-local coordinates and reports whether it hit
// an enabled button.
func (p *Panel) Click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.Adjust(i, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.Adjust(i, 1)
		}
	}
	return false
}

// Adjust steps row i in direction and reports whether the source accepted the
// new value. Boolean rows toggle whichever button is pressed.
func (p *Panel) Adjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target, ok := p.target(state, direction)
		if !ok || p.intSetter == nil {
			return false
		}
		next := int(target)
		if !p.intSetter.SetIntParameter(state.control.Key, next) {
			return false
		}
		state.intValue = next
		state.floatValue = target
		state.value = strconv.Itoa(next)
	case core.ParamTypeFloat:
		target, ok := p.target(state, direction)
		if !ok || p.floatSetter == nil {
			return false
		}
		if !p.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	case core.ParamTypeBool:
		if p.boolSetter == nil {
			return false
		}
		next := !state.boolValue
		if !p.boolSetter.SetBoolParameter(state.control.Key, next) {
			return false
		}
		state.boolValue = next
		state.value = onOff(next)
	default:
		return false
	}
	return true
}

// canAdjust reports whether the button for direction should be enabled.
func (p *Panel) canAdjust(state *controlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		_, ok := p.target(state, direction)
		return ok && p.intSetter != nil
	case core.ParamTypeFloat:
		_, ok := p.target(state, direction)
		return ok && p.floatSetter != nil
	case core.ParamTypeBool:
		return p.boolSetter != nil
	}
	return false
}

// target returns the clamped value one step away, and false when the step
// would not change anything.
func (p *Panel) target(state *controlState, direction int) (float64, bool) {
	ctrl := state.control
	var current, step float64
	if ctrl.Type == core.ParamTypeInt {
		current = float64(state.intValue)
		step = math.Max(math.Round(ctrl.Step), 1)
	} else {
		current = state.floatValue
		step = ctrl.Step
		if step <= 0 {
			step = 0.05
		}
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

func (p *Panel) layout() {
	if len(p.controls) == 0 || p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	summaryHeight  = 16
	controlsTop    = panelPadding + headerBaseline + summaryHeight + 14
)
