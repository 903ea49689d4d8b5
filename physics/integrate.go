package physics

import (
	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// IntegrateOptions configures one family's integrate-family task body. The
// four families (hydro, field, passive scalars, radiation) all share this same averaging
// and flux-divergence shape (spec.md §4.6: "identical averaging logic");
// only which collaborators are present differs.
type IntegrateOptions struct {
	Descriptor integrator.Descriptor
	Averager   Averager
	Flux       FluxDivergence
	Coord      CoordSource // nil for families without a coordinate source term (field, radiation)
	// DtScales controls whether the normal-stage flux-divergence weight is
	// multiplied by dt before being handed to Flux. Hydro and passive
	// scalars scale by dt; radiation's AddFluxDivergenceToAverage folds dt
	// internally and must not be scaled again (resolved ambiguity, see
	// DESIGN.md).
	DtScales bool
	// PenultimateHack enables ssprk5_4's stage-4 extra partial-sum write
	// into u2 (Gottlieb 2009). Only hydro, passive scalars and radiation
	// have one; field's IntegrateField has no such branch at all (see
	// DESIGN.md).
	PenultimateHack bool
	// PenultimateHackDtScales controls whether the hack's own
	// flux-divergence coefficient is dt-scaled, independently of DtScales:
	// hydro's hack branch scales by dt, but scalars' hack branch computes
	// beta*dt and then discards it, passing the bare beta to
	// AddFluxDivergence (time_integrator.cpp: IntegrateScalars, lines
	// 1447-1461) — a narrower inconsistency than the normal-stage
	// DtScales convention those two families otherwise share.
	PenultimateHackDtScales bool
}

// Integrate performs one stage's weighted-average register update plus
// flux-divergence add, and — for ssprk5_4's stage 4 — the hardcoded extra
// partial sum into u2 that the 3S* recurrence cannot express on its own
// (spec.md §4.6, §9).
func Integrate(opts IntegrateOptions, reg *block.Registers, bcc block.Slab, stage int, dt float64) task.Status {
	desc := opts.Descriptor
	if stage > desc.NStages {
		return task.Fail
	}
	w := desc.Stage(stage)

	opts.Averager.WeightedAve(reg.U1, reg.U, reg.U2, [3]float64{1.0, w.Delta, 0.0})

	if w.IsIdentityAverage() {
		reg.SwapUU1()
	} else {
		opts.Averager.WeightedAve(reg.U, reg.U1, reg.U2, [3]float64{w.Gamma1, w.Gamma2, w.Gamma3})
	}

	wght := w.Beta
	if opts.DtScales {
		wght *= dt
	}
	opts.Flux.AddFluxDivergence(wght, reg.U)
	if opts.Coord != nil {
		opts.Coord.AddCoordTermsDivergence(wght, bcc, reg.U)
	}

	if desc.IsPenultimateHackStage(stage) && opts.PenultimateHack {
		opts.Averager.WeightedAve(reg.U2, reg.U1, reg.U2, [3]float64{-1.0, 0.0, 0.0})
		hackWght := integrator.PenultimateHackBeta
		if opts.PenultimateHackDtScales {
			hackWght *= dt
		}
		opts.Flux.AddFluxDivergence(hackWght, reg.U2)
		if opts.Coord != nil {
			opts.Coord.AddCoordTermsDivergence(hackWght, bcc, reg.U2)
		}
	}

	return task.Next
}
