package reiter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidParams is returned by Validate when a parameter is out of range.
var ErrInvalidParams = errors.New("invalid parameters")

// Params holds the physical constants of the model.
type Params struct {
	// Alpha is the diffusion relaxation rate. The update moves u by Alpha/2
	// of the distance to the neighborhood average.
	Alpha float64 `yaml:"alpha"`
	// Beta is the vapor level given to every point created by expansion.
	Beta float64 `yaml:"beta"`
	// Gamma is the background deposition added to receptive cells per step.
	Gamma float64 `yaml:"gamma"`

	ExpandRounds int `yaml:"expand_rounds"`

	// Strict panics as soon as an operation leaves the grid in a state that
	// breaks the cell invariants.
	Strict bool `yaml:"strict"`
}

// Config controls a simulation run.
type Config struct {
	Params `yaml:",inline"`

	Iterations int `yaml:"iterations"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			Alpha:        1,
			Beta:         0.4,
			Gamma:        0.001,
			ExpandRounds: 40,
			Strict:       true,
		},
		Iterations: 400,
	}
}

// MapKeys lists the keys understood by FromMap and Overlay.
var MapKeys = []string{"alpha", "beta", "gamma", "rounds", "strict", "iterations"}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Overlay(cfg)
}

// Overlay returns c with the values present in cfg applied. Values that do not
// parse or are out of range are ignored.
func (c Config) Overlay(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Alpha = parsed
		}
	}
	if v, ok := cfg["beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Beta = parsed
		}
	}
	if v, ok := cfg["gamma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Gamma = parsed
		}
	}
	if v, ok := cfg["rounds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ExpandRounds = parsed
		}
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Strict = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	return c
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d < 0", ErrInvalidParams, c.Iterations)
	}
	return nil
}

// Validate reports the first out-of-range parameter.
func (p Params) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"gamma", p.Gamma},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) || r.value < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidParams, r.name, r.value)
		}
	}
	if p.ExpandRounds < 0 {
		return fmt.Errorf("%w: expand_rounds %d < 0", ErrInvalidParams, p.ExpandRounds)
	}
	return nil
}
