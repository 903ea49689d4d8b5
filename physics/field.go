package physics

import (
	"context"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewIntegrateField returns the INT_FLD task body: identical averaging
// shape to hydro (spec.md §4.6), but with no coordinate source term and no
// dt-scaling distinction since CT always applies beta*dt directly. Unlike
// hydro, passive scalars and radiation, IntegrateField has no ssprk5_4
// penultimate-hack branch at all (time_integrator.cpp:924-955), and
// StartupTaskList never seeds a b2 register for field (lines 742-753) —
// PenultimateHack is left at its zero value (false) here.
func NewIntegrateField(desc integrator.Descriptor, averager Averager, ct FluxDivergence, setup FluidSetup) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if setup != FluidEvolve {
			return task.Next
		}
		opts := IntegrateOptions{Descriptor: desc, Averager: averager, Flux: ct, Coord: nil, DtScales: true}
		return Integrate(opts, &blk.Field.Registers, nil, stage, blk.Dt)
	}
}
