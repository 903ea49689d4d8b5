package physics

import (
	"context"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewIntegrateScalars returns the INT_SCLR task body. Passive scalars have
// no dedicated source-term task (time_integrator.cpp: "there is no
// SRCTERM_SCLR task") and share hydro's dt-scaling convention for the
// normal stage update. Scalars does get an s2 register seeded at stage 1
// and does run the ssprk5_4 penultimate hack, but — unlike hydro — its hack
// branch computes wght=beta*dt and then calls AddFluxDivergence(beta, s2)
// with the bare, unscaled beta (time_integrator.cpp:1447-1461), so
// PenultimateHackDtScales stays false here even though DtScales is true.
func NewIntegrateScalars(desc integrator.Descriptor, averager Averager, flux FluxDivergence) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		opts := IntegrateOptions{
			Descriptor:              desc,
			Averager:                averager,
			Flux:                    flux,
			Coord:                   nil,
			DtScales:                true,
			PenultimateHack:         true,
			PenultimateHackDtScales: false,
		}
		return Integrate(opts, &blk.Scalars.Registers, nil, stage, blk.Dt)
	}
}
