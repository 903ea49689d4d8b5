// Package config is a serializable representation of the time-integrator
// configuration, grounded on the teacher's top-level Config (config.go):
// a plain struct with yaml tags, a DefaultConfig constructor, and a
// Validate method, loadable from a YAML parameter store.
package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/philipjon/athenarun/model/integrator"
)

// Config mirrors the "time" block of Athena++'s input parameter store
// (spec.md §1, §6): which integrator to use and the CFL safety factor
// applied on top of its stability limit.
type Config struct {
	Time TimeConfig `yaml:"time"`
}

// TimeConfig holds the two parameters the time-integrator task list itself
// reads out of the parameter store (spec.md §6 "time/integrator",
// "time/cfl_number").
type TimeConfig struct {
	Integrator string  `yaml:"integrator"`
	CFLNumber  float64 `yaml:"cfl_number"`
}

// DefaultConfig returns a Config populated with the same defaults Athena++
// falls back to when the input file omits these keys.
func DefaultConfig() *Config {
	return &Config{
		Time: TimeConfig{
			Integrator: "vl2",
			CFLNumber:  1.0,
		},
	}
}

// Load parses YAML bytes into a Config seeded with DefaultConfig, so that an
// input file which only overrides one field leaves the rest at their
// defaults.
func Load(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Validate checks that the integrator name is known and clamps (with a
// warning, not an error) a CFL number that exceeds the scheme's stability
// limit for the given dimensionality — Athena++ itself only warns here,
// it does not abort the run.
func (c *Config) Validate(ndim int) error {
	if c == nil {
		return fmt.Errorf("config: nil")
	}
	desc, err := integrator.Lookup(c.Time.Integrator)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Time.CFLNumber <= 0 {
		return fmt.Errorf("config: time.cfl_number must be > 0, got %v", c.Time.CFLNumber)
	}
	limit := desc.CFLLimitForDim(ndim)
	if c.Time.CFLNumber > limit {
		log.Printf("config: time.cfl_number %v exceeds %s stability limit %v for %d-d, clamping", c.Time.CFLNumber, desc.Name, limit, ndim)
		c.Time.CFLNumber = limit
	}
	return nil
}
