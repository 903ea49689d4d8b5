// Package integrator holds the registry of supported explicit multistage
// time-integration schemes and the per-stage stage-abscissa algebra shared
// by all of them.
package integrator

import "fmt"

// oneThird and twoThird match Athena++'s ONE_3RD/TWO_3RD literals used in
// the rk3/vl2 coefficient tables; kept as named constants rather than
// re-deriving 1.0/3.0 at each call site so the literal matches the
// original bit pattern exactly.
const (
	oneThird = 1.0 / 3.0
	twoThird = 2.0 / 3.0

	// PenultimateHackBeta is the SSPRK(5,4) stage-4 extra coefficient used to
	// populate the u2 register (Gottlieb 2009). It is intentionally not part
	// of StageWeights, so the hack stays out of the weights registry: only
	// the integrate-family task body (physics.Integrate) and the abscissa
	// computer (Abscissae.Advance) apply it.
	PenultimateHackBeta = 0.063692468666290
)

// StageWeights holds the (delta, gamma1, gamma2, gamma3, beta) Shu-Osher
// coefficients for one stage of a 2S/3S* low-storage Runge-Kutta scheme.
type StageWeights struct {
	Delta  float64
	Gamma1 float64
	Gamma2 float64
	Gamma3 float64
	Beta   float64
}

// IsIdentityAverage reports whether the weighted average at this stage
// degenerates to the identity (gamma1=0, gamma2=1, gamma3=0), in which case
// the integrate task may rebind register aliases instead of copying.
func (w StageWeights) IsIdentityAverage() bool {
	return w.Gamma1 == 0 && w.Gamma2 == 1 && w.Gamma3 == 0
}

// Descriptor is a named multistage integration scheme: its stage count, CFL
// stability limit, and ordered per-stage weights.
type Descriptor struct {
	Name      string
	NStages   int
	CFLLimit  float64
	Stages    []StageWeights
	dimLimits map[int]float64 // optional dimensionality-dependent CFL override
}

// CFLLimitForDim returns the stability limit for the given spatial
// dimensionality (1, 2 or 3), honoring per-scheme dimensionality overrides
// (only "vl2" has one, per spec.md §4.1).
func (d Descriptor) CFLLimitForDim(ndim int) float64 {
	if d.dimLimits != nil {
		if limit, ok := d.dimLimits[ndim]; ok {
			return limit
		}
	}
	return d.CFLLimit
}

// IsPenultimateHackStage reports whether the given 1-based stage is
// SSPRK(5,4)'s stage 4, which requires the extra u2-register write.
func (d Descriptor) IsPenultimateHackStage(stage int) bool {
	return d.Name == "ssprk5_4" && stage == 4
}

// Stage returns the 0-based-indexed stage weights for a 1-based stage
// number, panicking on out-of-range input since that indicates a
// construction-time programming error, not a runtime condition.
func (d Descriptor) Stage(stage int) StageWeights {
	if stage < 1 || stage > len(d.Stages) {
		panic(fmt.Sprintf("integrator %s: stage %d out of range [1,%d]", d.Name, stage, len(d.Stages)))
	}
	return d.Stages[stage-1]
}

// ErrUnknownIntegrator is returned by Lookup for an unrecognized scheme
// name; this is a construction-time fault and must propagate to the caller
// (spec.md §7).
type ErrUnknownIntegrator struct {
	Name string
}

func (e *ErrUnknownIntegrator) Error() string {
	return fmt.Sprintf("unknown integrator %q", e.Name)
}

var registry = map[string]Descriptor{
	"rk1": {
		Name:     "rk1",
		NStages:  1,
		CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.0},
		},
	},
	"vl2": {
		Name:     "vl2",
		NStages:  2,
		CFLLimit: 1.0,
		dimLimits: map[int]float64{
			1: 1.0,
			2: 0.5,
			3: oneThird,
		},
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 0.5},
			{Delta: 0.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.0},
		},
	},
	"rk2": {
		Name:     "rk2",
		NStages:  2,
		CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.0},
			{Delta: 0.0, Gamma1: 0.5, Gamma2: 0.5, Gamma3: 0.0, Beta: 0.5},
		},
	},
	"rk3": {
		Name:     "rk3",
		NStages:  3,
		CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.0},
			{Delta: 0.0, Gamma1: 0.25, Gamma2: 0.75, Gamma3: 0.0, Beta: 0.25},
			{Delta: 0.0, Gamma1: twoThird, Gamma2: oneThird, Gamma3: 0.0, Beta: twoThird},
		},
	},
	"rk4": {
		Name:     "rk4",
		NStages:  4,
		CFLLimit: 1.3925,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.193743905974738},
			{Delta: 0.217683334308543, Gamma1: 0.121098479554482, Gamma2: 0.721781678111411, Gamma3: 0.0, Beta: 0.099279895495783},
			{Delta: 1.065841341361089, Gamma1: -3.843833699660025, Gamma2: 2.121209265338722, Gamma3: 0.0, Beta: 1.131678018054042},
			{Delta: 0.0, Gamma1: 0.546370891121863, Gamma2: 0.198653035682705, Gamma3: 0.0, Beta: 0.310665766509336},
		},
	},
	"ssprk5_4": {
		Name:     "ssprk5_4",
		NStages:  5,
		CFLLimit: 1.3925,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 0.391752226571890},
			{Delta: 0.0, Gamma1: 0.555629506348765, Gamma2: 0.444370493651235, Gamma3: 0.0, Beta: 0.368410593050371},
			{Delta: 0.517231671970585, Gamma1: 0.379898148511597, Gamma2: 0.0, Gamma3: 0.620101851488403, Beta: 0.251891774271694},
			{Delta: 0.096059710526147, Gamma1: 0.821920045606868, Gamma2: 0.0, Gamma3: 0.178079954393132, Beta: 0.544974750228521},
			{Delta: 0.0, Gamma1: 0.386708617503268, Gamma2: 1.0, Gamma3: 1.0, Beta: 0.226007483236906},
		},
	},
}

// Lookup returns the descriptor for name, or ErrUnknownIntegrator.
func Lookup(name string) (Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return Descriptor{}, &ErrUnknownIntegrator{Name: name}
	}
	return d, nil
}

// Names returns the supported integrator names, for diagnostics and tests.
func Names() []string {
	return []string{"rk1", "vl2", "rk2", "rk3", "rk4", "ssprk5_4"}
}
