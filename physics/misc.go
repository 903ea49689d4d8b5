package physics

import (
	"context"
	"log"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewPhysicalBoundary returns the PHY_BVAL task body.
func NewPhysicalBoundary(desc integrator.Descriptor, applier PhysicalBoundaryApplier) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		tEnd := blk.Abscissae.At(stage)[0]
		dt := desc.Stage(stage).Beta * blk.Dt
		if err := applier.ApplyPhysicalBoundaries(tEnd, dt); err != nil {
			log.Printf("athenarun: block %s: apply physical boundaries: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}

// NewUserWork returns the USERWORK task body, run only on the final stage
// (spec.md §4.6 "only do on last stage").
func NewUserWork(desc integrator.Descriptor, worker UserWorker) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if stage != desc.NStages {
			return task.Success
		}
		worker.UserWorkInLoop()
		return task.Success
	}
}

// NewNewBlockTimeStep returns the NEW_DT task body.
func NewNewBlockTimeStep(desc integrator.Descriptor, calc TimestepCalculator) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if stage != desc.NStages {
			return task.Success
		}
		calc.NewBlockTimeStep()
		return task.Success
	}
}

// NewCheckRefinement returns the FLAG_AMR task body.
func NewCheckRefinement(desc integrator.Descriptor, checker RefinementChecker) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if stage != desc.NStages {
			return task.Success
		}
		checker.CheckRefinementCondition()
		return task.Success
	}
}

// NewClearAllBoundary returns the CLEAR_ALLBND task body.
func NewClearAllBoundary(ctrl BoundaryController) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		ctrl.ClearBoundary()
		return task.Success
	}
}
