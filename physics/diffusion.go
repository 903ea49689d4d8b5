package physics

import (
	"context"

	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewDiffuseHydro returns the DIFFUSE_HYD task body: compute diffusive
// hydro fluxes ahead of CALC_HYDFLX, short-circuiting to Next when no
// diffusion process is configured or hydro is not being evolved (spec.md
// §4.6).
func NewDiffuseHydro(diff Diffusion, setup FluidSetup) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if setup != FluidEvolve || diff == nil || !diff.Defined() {
			return task.Next
		}
		diff.CalcDiffusionFlux()
		return task.Next
	}
}

// NewDiffuseField returns the DIFFUSE_FLD task body.
func NewDiffuseField(diff Diffusion) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if diff == nil || !diff.Defined() {
			return task.Next
		}
		diff.CalcDiffusionFlux()
		return task.Next
	}
}

// NewDiffuseScalars returns the DIFFUSE_SCLR task body.
func NewDiffuseScalars(diff Diffusion) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if diff == nil || !diff.Defined() {
			return task.Next
		}
		diff.CalcDiffusionFlux()
		return task.Next
	}
}
