package integrator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("not-a-scheme")
	require.Error(t, err)
	var unknown *ErrUnknownIntegrator
	assert.ErrorAs(t, err, &unknown)
}

func TestLookupKnownSchemes(t *testing.T) {
	for _, name := range Names() {
		d, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name)
		assert.Len(t, d.Stages, d.NStages)
	}
}

func TestVL2DimensionalCFL(t *testing.T) {
	d, err := Lookup("vl2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.CFLLimitForDim(1))
	assert.Equal(t, 0.5, d.CFLLimitForDim(2))
	assert.InDelta(t, 1.0/3.0, d.CFLLimitForDim(3), 1e-15)
}

func TestOtherSchemesIgnoreDimensionality(t *testing.T) {
	for _, name := range []string{"rk1", "rk2", "rk3"} {
		d, err := Lookup(name)
		require.NoError(t, err)
		for _, ndim := range []int{1, 2, 3} {
			assert.Equal(t, 1.0, d.CFLLimitForDim(ndim))
		}
	}
	d, err := Lookup("rk4")
	require.NoError(t, err)
	for _, ndim := range []int{1, 2, 3} {
		assert.Equal(t, 1.3925, d.CFLLimitForDim(ndim))
	}
}

// S3 (spec.md §3 invariant 3): for rk1, rk2, rk3, ssprk5_4 the stage-abscissa
// table at the last stage's u register must equal dt exactly.
func TestAbscissaReachesDtExactly(t *testing.T) {
	dt := 0.37
	for _, name := range []string{"rk1", "rk2", "rk3", "ssprk5_4"} {
		d, err := Lookup(name)
		require.NoError(t, err)
		abs := NewAbscissae(d.NStages)
		for stage := 1; stage <= d.NStages; stage++ {
			abs.Advance(stage, d.Stage(stage), dt)
		}
		got := abs.At(d.NStages)[0]
		assert.InDeltaf(t, dt, got, 1e-12, "scheme %s: abs[nstages][0]", name)
	}
}

// vl2 and rk4 only satisfy this within floating-point rounding.
func TestAbscissaReachesDtWithinRounding(t *testing.T) {
	dt := 0.37
	for _, name := range []string{"vl2", "rk4"} {
		d, err := Lookup(name)
		require.NoError(t, err)
		abs := NewAbscissae(d.NStages)
		for stage := 1; stage <= d.NStages; stage++ {
			abs.Advance(stage, d.Stage(stage), dt)
		}
		got := abs.At(d.NStages)[0]
		assert.True(t, math.Abs(got-dt) < 1e-9, "scheme %s: abs=%v dt=%v", name, got, dt)
	}
}

func TestIdentityAverageDetection(t *testing.T) {
	w := StageWeights{Gamma1: 0, Gamma2: 1, Gamma3: 0}
	assert.True(t, w.IsIdentityAverage())
	w.Gamma1 = 0.5
	w.Gamma2 = 0.5
	assert.False(t, w.IsIdentityAverage())
}

func TestSSPRK54PenultimateHackStage(t *testing.T) {
	d, err := Lookup("ssprk5_4")
	require.NoError(t, err)
	assert.True(t, d.IsPenultimateHackStage(4))
	assert.False(t, d.IsPenultimateHackStage(3))
	other, err := Lookup("rk4")
	require.NoError(t, err)
	assert.False(t, other.IsPenultimateHackStage(4))
}
