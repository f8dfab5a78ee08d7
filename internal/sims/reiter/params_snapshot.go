package reiter

import (
	"math"

	"snowflake/internal/core"
)

// Parameters reports the configuration and progress of the grid.
func (g *Grid) Parameters() core.ParameterSnapshot {
	stats := g.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Model",
			Params: []core.Parameter{
				core.FloatParam("alpha", "Alpha", g.cfg.Alpha),
				core.FloatParam("beta", "Beta", g.cfg.Beta),
				core.FloatParam("gamma", "Gamma", g.cfg.Gamma),
			},
		},
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("rounds", "Expansion rounds", g.cfg.ExpandRounds),
				core.IntParam("points", "Points", stats.Points),
				core.BoolParam("strict", "Strict", g.cfg.Strict),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.IntParam("iteration", "Iteration", stats.Iteration),
				core.IntParam("frozen", "Frozen", stats.Frozen),
				core.IntParam("boundary", "Boundary", stats.Boundary),
				core.IntParam("extent", "Extent", stats.Extent),
			},
		},
	}}
}

// ParameterControls lists the constants that can be changed while running.
func (g *Grid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "alpha", Label: "Alpha", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "beta", Label: "Beta", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "gamma", Label: "Gamma", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
		{Key: "rounds", Label: "Expansion rounds", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates alpha, beta or gamma. Values are clamped to the
// control bounds. Beta only affects points created by later expansions.
func (g *Grid) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	ctrl, ok := g.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = clamp(value, ctrl)
	switch key {
	case "alpha":
		g.cfg.Alpha = value
	case "beta":
		g.cfg.Beta = value
	case "gamma":
		g.cfg.Gamma = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates the expansion round count used by Reset.
func (g *Grid) SetIntParameter(key string, value int) bool {
	ctrl, ok := g.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	g.cfg.ExpandRounds = int(clamp(float64(value), ctrl))
	return true
}

func (g *Grid) control(key string) (core.ParameterControl, bool) {
	for _, ctrl := range g.ParameterControls() {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func clamp(v float64, ctrl core.ParameterControl) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}
