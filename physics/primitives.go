package physics

import (
	"context"

	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewPrimitives returns the CONS2PRIM task body: recover primitives from
// the just-updated hydro conserved variables into the w1 scratch register,
// then swap it into place so w holds the current stage's output (spec.md
// §4.6 CONS2PRIM, register-swap optimization per §9).
func NewPrimitives(eos ConservedToPrimitive) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		eos.ConservedToPrimitive(blk.Hydro.U, blk.Hydro.W, blk.Hydro.W1)
		blk.Hydro.SwapWW1()
		return task.Success
	}
}

// NewPrimitivesRad returns the CONS2PRIM task body for radiation-enabled
// runs, used in place of NewPrimitives: it performs the same hydro recovery
// and w/w1 swap, then the radiation moment-aware conserved-to-primitive
// recovery and its own w/w1 swap (time_integrator.cpp:
// ConservedToPrimitiveWithMoments, then
// prad->prim.SwapAthenaArray(prad->prim1)).
func NewPrimitivesRad(eos ConservedToPrimitive, radEOS ConservedToPrimitive) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		eos.ConservedToPrimitive(blk.Hydro.U, blk.Hydro.W, blk.Hydro.W1)
		blk.Hydro.SwapWW1()
		radEOS.ConservedToPrimitive(blk.Radiation.U, blk.Radiation.W, blk.Radiation.W1)
		blk.Radiation.SwapWW1()
		return task.Success
	}
}
