package physics

import (
	"context"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewIntegrateRad returns the INT_RAD task body. Unlike hydro and field,
// radiation's AddFluxDivergenceToAverage folds the dt multiplication into
// its own primitive-weighted update, so the weight handed to it must not
// be pre-scaled by dt (resolved from time_integrator.cpp: IntegrateRad
// passes `stage_wghts[stage-1].beta` directly, never beta*dt — see
// DESIGN.md Open Question decisions). Radiation does get a cons2 register
// seeded at stage 1 and does run the ssprk5_4 penultimate hack, passing the
// same bare beta its normal stage update uses (time_integrator.cpp:981-990),
// so PenultimateHackDtScales stays false, consistent with DtScales.
func NewIntegrateRad(desc integrator.Descriptor, averager Averager, fluxToAvg FluxDivergence) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		opts := IntegrateOptions{
			Descriptor:              desc,
			Averager:                averager,
			Flux:                    fluxToAvg,
			Coord:                   nil,
			DtScales:                false,
			PenultimateHack:         true,
			PenultimateHackDtScales: false,
		}
		return Integrate(opts, &blk.Radiation.Registers, nil, stage, blk.Dt)
	}
}

// NewAddSourceTermsRad returns the SRCTERM_RAD task body.
func NewAddSourceTermsRad(desc integrator.Descriptor, src SourceTerms) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if src == nil || !src.Defined() {
			return task.Next
		}
		tStart := blk.Abscissae.At(stage - 1)[0]
		dt := desc.Stage(stage).Beta * blk.Dt
		src.AddSourceTerms(tStart, dt, blk.Radiation.U)
		return task.Next
	}
}

// NewCalculateOpacity returns the CALC_OPACITY task body.
func NewCalculateOpacity(calc OpacityCalculator) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		calc.UpdateOpacity()
		return task.Next
	}
}
