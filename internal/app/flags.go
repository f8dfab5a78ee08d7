package app

import (
	"github.com/spf13/pflag"

	"snowflake/internal/sims/reiter"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Params   string
	LogLevel string
	Model    reiter.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 30, HUDWidth: 240, LogLevel: "info", Model: reiter.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the parameter panel, 0 hides it")
	fs.StringVar(&c.Params, "config", c.Params, "YAML parameter file")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.Float64Var(&c.Model.Alpha, "alpha", c.Model.Alpha, "diffusion relaxation rate")
	fs.Float64Var(&c.Model.Beta, "beta", c.Model.Beta, "initial vapor level of new points")
	fs.Float64Var(&c.Model.Gamma, "gamma", c.Model.Gamma, "background deposition per step")
	fs.IntVar(&c.Model.ExpandRounds, "rounds", c.Model.ExpandRounds, "expansion rounds before the first step")
}

// Resolve loads the parameter file, if any, and re-applies flags that were set
// explicitly so they win over file values.
func (c *Config) Resolve(fs *pflag.FlagSet) (reiter.Config, error) {
	if c.Params == "" {
		return c.Model, c.Model.Validate()
	}
	cfg, err := reiter.LoadFile(c.Params)
	if err != nil {
		return reiter.Config{}, err
	}
	if fs.Changed("alpha") {
		cfg.Alpha = c.Model.Alpha
	}
	if fs.Changed("beta") {
		cfg.Beta = c.Model.Beta
	}
	if fs.Changed("gamma") {
		cfg.Gamma = c.Model.Gamma
	}
	if fs.Changed("rounds") {
		cfg.ExpandRounds = c.Model.ExpandRounds
	}
	return cfg, cfg.Validate()
}
