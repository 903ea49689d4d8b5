package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate(2))
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	c, err := Load([]byte("time:\n  integrator: rk3\n"))
	require.NoError(t, err)
	assert.Equal(t, "rk3", c.Time.Integrator)
	assert.Equal(t, 1.0, c.Time.CFLNumber)
}

func TestValidateRejectsUnknownIntegrator(t *testing.T) {
	c := &Config{Time: TimeConfig{Integrator: "bogus", CFLNumber: 1.0}}
	assert.Error(t, c.Validate(2))
}

func TestValidateRejectsNonPositiveCFL(t *testing.T) {
	c := &Config{Time: TimeConfig{Integrator: "rk1", CFLNumber: 0}}
	assert.Error(t, c.Validate(2))
}

func TestValidateClampsExcessiveCFL(t *testing.T) {
	c := &Config{Time: TimeConfig{Integrator: "vl2", CFLNumber: 0.9}}
	require.NoError(t, c.Validate(3))
	assert.Equal(t, 1.0/3.0, c.Time.CFLNumber)
}
