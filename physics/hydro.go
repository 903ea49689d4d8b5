package physics

import (
	"context"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// FluidSetup mirrors Athena++'s FluidFormulation: a block whose hydro is
// not being time-advanced (background/fixed) short-circuits the integrate
// and source-term tasks to task.Next without touching storage (spec.md
// §4.6 "fluid_setup != evolve").
type FluidSetup int

const (
	FluidEvolve FluidSetup = iota
	FluidFixed
)

// NewIntegrateHydro returns the INT_HYD task body: the shared
// weighted-average-plus-flux-divergence step with hydro's coordinate
// source term and the ssprk5_4 penultimate hack, scaled by dt.
func NewIntegrateHydro(desc integrator.Descriptor, averager Averager, flux FluxDivergence, coord CoordSource, setup FluidSetup) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if setup != FluidEvolve {
			return task.Next
		}
		opts := IntegrateOptions{
			Descriptor:              desc,
			Averager:                averager,
			Flux:                    flux,
			Coord:                   coord,
			DtScales:                true,
			PenultimateHack:         true,
			PenultimateHackDtScales: true,
		}
		return Integrate(opts, &blk.Hydro.Registers, blk.BCC, stage, blk.Dt)
	}
}

// NewAddSourceTermsHydro returns the SRCTERM_HYD task body. tStart is the
// abscissa-relative time at the beginning of the stage, matching
// pmb->pmy_mesh->time + pmb->stage_abscissae[stage-1][0] minus the mesh's
// absolute cycle start time, which this package does not track (spec.md
// §1 "out of scope": a global clock / checkpoint epoch).
func NewAddSourceTermsHydro(desc integrator.Descriptor, src SourceTerms, setup FluidSetup) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if setup != FluidEvolve || src == nil || !src.Defined() {
			return task.Next
		}
		tStart := blk.Abscissae.At(stage - 1)[0]
		dt := desc.Stage(stage).Beta * blk.Dt
		src.AddSourceTerms(tStart, dt, blk.Hydro.U)
		return task.Next
	}
}
