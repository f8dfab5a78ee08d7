package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/pflag"

	"snowflake/internal/sims/reiter"
)

// modelFlags binds the model parameters shared by every subcommand. Sources
// apply in order: defaults, the --config file, --set pairs, then named flags
// given on the command line.
type modelFlags struct {
	path string
	set  map[string]string
	cfg  reiter.Config
}

func newModelFlags() *modelFlags {
	return &modelFlags{cfg: reiter.DefaultConfig()}
}

func (m *modelFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&m.path, "config", "", "YAML parameter file")
	fs.StringToStringVar(&m.set, "set", nil, "Parameter overrides as key=value pairs (alpha, beta, gamma, rounds, strict, iterations)")
	fs.Float64Var(&m.cfg.Alpha, "alpha", m.cfg.Alpha, "Diffusion relaxation rate")
	fs.Float64Var(&m.cfg.Beta, "beta", m.cfg.Beta, "Initial vapor of points created by expansion")
	fs.Float64Var(&m.cfg.Gamma, "gamma", m.cfg.Gamma, "Background deposition per step on frozen and boundary cells")
	fs.IntVar(&m.cfg.ExpandRounds, "rounds", m.cfg.ExpandRounds, "Expansion rounds before the first step")
	fs.IntVar(&m.cfg.Iterations, "iterations", m.cfg.Iterations, "Number of steps to simulate")
	fs.BoolVar(&m.cfg.Strict, "strict", m.cfg.Strict, "Panic on invariant violations after every operation")
}

func (m *modelFlags) resolve(fs *pflag.FlagSet) (reiter.Config, error) {
	for _, k := range slices.Sorted(maps.Keys(m.set)) {
		if !slices.Contains(reiter.MapKeys, k) {
			return reiter.Config{}, fmt.Errorf("%w: unknown --set key %q", reiter.ErrInvalidParams, k)
		}
	}

	cfg := reiter.DefaultConfig()
	if m.path != "" {
		var err error
		if cfg, err = reiter.LoadFile(m.path); err != nil {
			return reiter.Config{}, err
		}
	}
	cfg = cfg.Overlay(m.set)

	overrides := map[string]func(){
		"alpha":      func() { cfg.Alpha = m.cfg.Alpha },
		"beta":       func() { cfg.Beta = m.cfg.Beta },
		"gamma":      func() { cfg.Gamma = m.cfg.Gamma },
		"rounds":     func() { cfg.ExpandRounds = m.cfg.ExpandRounds },
		"iterations": func() { cfg.Iterations = m.cfg.Iterations },
		"strict":     func() { cfg.Strict = m.cfg.Strict },
	}
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply()
		}
	}
	return cfg, cfg.Validate()
}
