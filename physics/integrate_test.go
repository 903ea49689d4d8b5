package physics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

type fakeSlab struct{ name string }

func (s *fakeSlab) Zero() {}

type recordingAverager struct {
	calls []struct {
		dst, src1, src2 string
		w               [3]float64
	}
}

func slabName(s block.Slab) string {
	if s == nil {
		return "<nil>"
	}
	return s.(*fakeSlab).name
}

func (a *recordingAverager) WeightedAve(dst, src1, src2 block.Slab, w [3]float64) {
	a.calls = append(a.calls, struct {
		dst, src1, src2 string
		w               [3]float64
	}{slabName(dst), slabName(src1), slabName(src2), w})
}

type recordingFlux struct {
	calls []struct {
		wght float64
		u    string
	}
}

func (f *recordingFlux) AddFluxDivergence(wght float64, u block.Slab) {
	f.calls = append(f.calls, struct {
		wght float64
		u    string
	}{wght, slabName(u)})
}

type recordingCoord struct{ calls int }

func (c *recordingCoord) AddCoordTermsDivergence(wght float64, bcc, u block.Slab) {
	c.calls++
}

func newRegisters() *block.Registers {
	return &block.Registers{
		U:  &fakeSlab{name: "u"},
		U1: &fakeSlab{name: "u1"},
		U2: &fakeSlab{name: "u2"},
	}
}

func TestIntegrateNonIdentityAverageCallsWeightedAve(t *testing.T) {
	desc, err := integrator.Lookup("rk3")
	require.NoError(t, err)
	reg := newRegisters()
	avg := &recordingAverager{}
	flux := &recordingFlux{}

	// rk3 stage 2 is not an identity average (gamma1=0.25, gamma2=0.75).
	status := Integrate(IntegrateOptions{Descriptor: desc, Averager: avg, Flux: flux, DtScales: true}, reg, nil, 2, 2.0)

	assert.Equal(t, task.Next, status)
	require.Len(t, avg.calls, 2)
	assert.Equal(t, "u", avg.calls[1].dst)
	require.Len(t, flux.calls, 1)
	assert.Equal(t, desc.Stage(2).Beta*2.0, flux.calls[0].wght)
}

func TestIntegrateIdentityAverageSwapsInsteadOfAveraging(t *testing.T) {
	desc, err := integrator.Lookup("rk1")
	require.NoError(t, err)
	reg := newRegisters()
	u, u1 := reg.U, reg.U1
	avg := &recordingAverager{}
	flux := &recordingFlux{}

	Integrate(IntegrateOptions{Descriptor: desc, Averager: avg, Flux: flux, DtScales: true}, reg, nil, 1, 1.0)

	// rk1's only stage is {gamma1:0, gamma2:1, gamma3:0} — an identity
	// average, so u/u1 must have been rebound rather than re-averaged.
	assert.Same(t, u, reg.U1)
	assert.Same(t, u1, reg.U)
	require.Len(t, avg.calls, 1, "only the u1 <- u update should call WeightedAve; the u <- u1 step should swap")
}

func TestIntegrateDtScalingDistinguishesHydroFromRadiation(t *testing.T) {
	desc, err := integrator.Lookup("vl2")
	require.NoError(t, err)

	hydroFlux := &recordingFlux{}
	Integrate(IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: hydroFlux, DtScales: true}, newRegisters(), nil, 1, 3.0)
	assert.Equal(t, desc.Stage(1).Beta*3.0, hydroFlux.calls[0].wght)

	radFlux := &recordingFlux{}
	Integrate(IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: radFlux, DtScales: false}, newRegisters(), nil, 1, 3.0)
	assert.Equal(t, desc.Stage(1).Beta, radFlux.calls[0].wght)
}

func TestIntegratePenultimateHackWritesToU2(t *testing.T) {
	desc, err := integrator.Lookup("ssprk5_4")
	require.NoError(t, err)
	reg := newRegisters()
	avg := &recordingAverager{}
	flux := &recordingFlux{}

	opts := IntegrateOptions{Descriptor: desc, Averager: avg, Flux: flux, DtScales: true, PenultimateHack: true, PenultimateHackDtScales: true}
	Integrate(opts, reg, nil, 4, 2.0)

	require.Len(t, flux.calls, 2, "stage 4 of ssprk5_4 must add flux divergence to u and then, via the hack, to u2")
	assert.Equal(t, integrator.PenultimateHackBeta*2.0, flux.calls[1].wght, "hydro's hack branch scales the hack coefficient by dt")
	assert.Equal(t, "u2", flux.calls[1].u)
}

func TestIntegratePenultimateHackSkippedWhenFamilyDoesNotSupportIt(t *testing.T) {
	desc, err := integrator.Lookup("ssprk5_4")
	require.NoError(t, err)
	flux := &recordingFlux{}

	Integrate(IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: flux, DtScales: true}, newRegisters(), nil, 4, 2.0)

	require.Len(t, flux.calls, 1, "field has no penultimate-hack branch at all, even at ssprk5_4 stage 4")
}

func TestIntegratePenultimateHackScalarsDoesNotDtScaleTheHackCoefficient(t *testing.T) {
	desc, err := integrator.Lookup("ssprk5_4")
	require.NoError(t, err)
	flux := &recordingFlux{}

	opts := IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: flux, DtScales: true, PenultimateHack: true, PenultimateHackDtScales: false}
	Integrate(opts, newRegisters(), nil, 4, 2.0)

	require.Len(t, flux.calls, 2)
	assert.Equal(t, integrator.PenultimateHackBeta, flux.calls[1].wght, "scalars' hack branch passes the bare beta, unlike hydro's")
}

func TestIntegrateCallsCoordSourceOnlyWhenPresent(t *testing.T) {
	desc, err := integrator.Lookup("rk1")
	require.NoError(t, err)
	coord := &recordingCoord{}
	Integrate(IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: &recordingFlux{}, Coord: coord, DtScales: true}, newRegisters(), nil, 1, 1.0)
	assert.Equal(t, 1, coord.calls)
}

func TestIntegrateFailsPastLastStage(t *testing.T) {
	desc, err := integrator.Lookup("rk1")
	require.NoError(t, err)
	status := Integrate(IntegrateOptions{Descriptor: desc, Averager: &recordingAverager{}, Flux: &recordingFlux{}}, newRegisters(), nil, 2, 1.0)
	assert.Equal(t, task.Fail, status)
}

func TestIntegrateHydroShortCircuitsWhenNotEvolved(t *testing.T) {
	desc, err := integrator.Lookup("rk1")
	require.NoError(t, err)
	avg := &recordingAverager{}
	fn := NewIntegrateHydro(desc, avg, &recordingFlux{}, nil, FluidFixed)
	status := fn(context.Background(), block.New(), 1)
	assert.Equal(t, task.Next, status)
	assert.Empty(t, avg.calls)
}
