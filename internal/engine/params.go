package engine

import (
	"iris/internal/core"
	"iris/internal/mathx"
)

// Parameters reports the tunables shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	ic := e.cfg.Interact
	wave := e.wave.Config()
	from, to, t := e.StageAt(e.in.progress)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Stage",
			Params: []core.Parameter{
				core.FloatParam("progress", "Progress", e.in.progress),
				core.IntParam("particles", "Particles", e.store.Len()),
				core.BoolParam("trails", "Trails", e.cfg.Trails),
				core.FloatParam("identity_mix", "Identity mix", e.cfg.IdentityMix),
			},
			Summary: stageSummary(from.Name(), to.Name(), t),
		},
		{
			Name: "Hover",
			Params: []core.Parameter{
				core.FloatParam("hover_radius", "Hover radius", ic.Hover.Radius),
				core.FloatParam("hover_amplitude", "Hover amplitude", ic.Hover.Amplitude),
				core.FloatParam("click_strength", "Click strength", ic.Click.Strength),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				core.FloatParam("magnetic_strength", "Magnetic strength", ic.Magnetic.Strength),
				core.FloatParam("wave_speed", "Wave speed", wave.Speed),
				core.FloatParam("wave_strength", "Wave strength", wave.Strength),
			},
		},
	}}
}

func stageSummary(from, to string, t float64) string {
	if t == 0 || from == to {
		return from
	}
	return from + " -> " + to
}

// ParameterControls lists the HUD-adjustable parameters.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "progress", Label: "Progress", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: e.MaxProgress(), HasMin: true, HasMax: true},
		{Key: "trails", Label: "Trails", Type: core.ParamTypeBool},
		{Key: "identity_mix", Label: "Identity mix", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "hover_radius", Label: "Hover radius", Type: core.ParamTypeFloat, Step: 10, Min: 0, HasMin: true},
		{Key: "hover_amplitude", Label: "Hover amplitude", Type: core.ParamTypeFloat, Step: 1, Min: 0, HasMin: true},
		{Key: "click_strength", Label: "Click strength", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "magnetic_strength", Label: "Magnetic strength", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "wave_speed", Label: "Wave speed", Type: core.ParamTypeFloat, Step: 20, Min: 20, HasMin: true},
		{Key: "wave_strength", Label: "Wave strength", Type: core.ParamTypeFloat, Step: 2, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a float tunable, clamping to its bounds. It
// reports whether key names a known parameter.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	ic := &e.cfg.Interact
	wave := e.wave.Config()
	nonNeg := max(value, 0)
	switch key {
	case "progress":
		e.SetProgress(value)
	case "identity_mix":
		e.cfg.IdentityMix = mathx.Clamp01(value)
	case "hover_radius":
		ic.Hover.Radius = nonNeg
	case "hover_amplitude":
		ic.Hover.Amplitude = nonNeg
	case "click_strength":
		ic.Click.Strength = nonNeg
	case "magnetic_strength":
		ic.Magnetic.Strength = nonNeg
	case "wave_speed":
		wave.Speed = max(value, 20)
		e.wave.SetConfig(wave)
	case "wave_strength":
		wave.Strength = nonNeg
		e.wave.SetConfig(wave)
	default:
		return false
	}
	ic.Wave = e.wave.Config()
	return true
}

// SetBoolParameter toggles a boolean tunable.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	if key != "trails" {
		return false
	}
	e.cfg.Trails = value
	if !value {
		e.store.ClearHistory()
	}
	return true
}
