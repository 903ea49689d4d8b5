// Command athenarun drives a handful of mesh blocks through a few
// timesteps using a toy scalar collaborator set, to smoke-test the wiring
// between model/integrator, runtime/tasklist, runtime/executor and
// physics end to end (spec.md §1 Overview). It is not a physics solver —
// every collaborator below stands in for the real flux/EOS/boundary
// kernels the spec places out of scope.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/philipjon/athenarun"
	"github.com/philipjon/athenarun/model/config"
	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/model/taskid"
	"github.com/philipjon/athenarun/physics"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
	"github.com/philipjon/athenarun/runtime/tasklist"
	"github.com/philipjon/athenarun/tracing"
)

func main() {
	var (
		integratorName = flag.String("integrator", "vl2", "time integration scheme (rk1, vl2, rk2, rk3, rk4, ssprk5_4)")
		nblocks        = flag.Int("blocks", 4, "number of mesh blocks")
		nsteps         = flag.Int("steps", 8, "number of timesteps")
		dt             = flag.Float64("dt", 0.05, "fixed timestep")
		traceFile      = flag.String("trace", "", "write OpenTelemetry spans here (stdout if empty)")
	)
	flag.Parse()

	if err := tracing.Init("athenarun", "dev", *traceFile); err != nil {
		log.Printf("athenarun: tracing disabled: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Time.Integrator = *integratorName

	blocks := make([]*block.Block, *nblocks)
	for i := range blocks {
		blk := block.New()
		blk.Hydro.U = &toySlab{}
		blk.Hydro.U1 = &toySlab{}
		blk.Hydro.U2 = &toySlab{}
		blk.Hydro.W = &toySlab{}
		blk.Hydro.W1 = &toySlab{}
		blocks[i] = blk
	}

	ctrl, err := athenarun.NewController(
		athenarun.WithConfig(cfg),
		athenarun.WithDimensionality(3),
		athenarun.WithTaskBodies(wireToyHydro),
		athenarun.WithBlocks(blocks...),
	)
	if err != nil {
		log.Fatalf("athenarun: %v", err)
	}

	log.Printf("athenarun: running %d block(s) through %d step(s) of %s", *nblocks, *nsteps, ctrl.Integrator().Name)
	for step := 0; step < *nsteps; step++ {
		if err := ctrl.RunTimestep(context.Background(), *dt); err != nil {
			log.Fatalf("athenarun: step %d: %v", step, err)
		}
		log.Printf("athenarun: step %d complete, u=%v", step, blocks[0].Hydro.U.(*toySlab).Value)
	}
}

// toySlab stands in for a real multi-dimensional storage array. It carries
// a single scalar so the smoke test has something to print.
type toySlab struct {
	Value float64
}

func (s *toySlab) Zero() { s.Value = 0 }

// CopyFrom backs the ssprk5_4 stage-1 u2=u seed (controller.go's
// copyUToU2).
func (s *toySlab) CopyFrom(src block.Slab) {
	if o, ok := src.(*toySlab); ok {
		s.Value = o.Value
	}
}

// toyAverager implements physics.Averager with plain scalar arithmetic.
type toyAverager struct{}

func (toyAverager) WeightedAve(dst, src1, src2 block.Slab, w [3]float64) {
	d, s1, s2 := dst.(*toySlab), src1.(*toySlab), src2.(*toySlab)
	d.Value = w[0]*d.Value + w[1]*s1.Value + w[2]*s2.Value
}

// toyFlux implements physics.FluxDivergence as a constant decay rate, just
// enough to make successive steps visibly change u.
type toyFlux struct{ Rate float64 }

func (f toyFlux) AddFluxDivergence(wght float64, u block.Slab) {
	s := u.(*toySlab)
	s.Value += wght * (-f.Rate * s.Value)
}

// toyExchange implements physics.BoundaryExchange as a single-block loop
// back to itself: nothing to send anywhere, so receive is always ready.
type toyExchange struct{}

func (toyExchange) SendBoundaryBuffers() error            { return nil }
func (toyExchange) ReceiveBoundaryBuffers() (bool, error) { return true, nil }
func (toyExchange) SetBoundaries() error                  { return nil }

// toyEOS implements physics.ConservedToPrimitive as the identity map.
type toyEOS struct{}

func (toyEOS) ConservedToPrimitive(u, w, w1 block.Slab) {
	w1.(*toySlab).Value = u.(*toySlab).Value
}

// toyPhysicalBoundary implements physics.PhysicalBoundaryApplier as a no-op.
type toyPhysicalBoundary struct{}

func (toyPhysicalBoundary) ApplyPhysicalBoundaries(tEnd, dt float64) error { return nil }

// toyUserWorker, toyTimestep and toyBoundaryController round out the
// final-stage-only and startup/clear collaborators with no-ops.
type toyUserWorker struct{}

func (toyUserWorker) UserWorkInLoop() {}

type toyTimestep struct{}

func (toyTimestep) NewBlockTimeStep() {}

type toyBoundaryController struct{}

func (toyBoundaryController) StartReceiving() {}
func (toyBoundaryController) ClearBoundary()  {}

// wireToyHydro attaches the toy collaborators above to every task in the
// minimal hydro-only (no MHD, scalars, radiation, multilevel, shearing box)
// task set built by tasklist.Build with no options.
func wireToyHydro(l *tasklist.List, desc integrator.Descriptor) error {
	ex := toyExchange{}
	bodies := map[taskid.ID]task.Fn{
		taskid.DiffuseHyd: physics.NewDiffuseHydro(nil, physics.FluidEvolve),
		taskid.CalcHydFlx: func(ctx context.Context, blk *block.Block, stage int) task.Status {
			return task.Success
		},
		taskid.IntHyd:      physics.NewIntegrateHydro(desc, toyAverager{}, toyFlux{Rate: 0.1}, nil, physics.FluidEvolve),
		taskid.SrcTermHyd:  physics.NewAddSourceTermsHydro(desc, nil, physics.FluidEvolve),
		taskid.SendHyd:     physics.NewSendBoundary(ex),
		taskid.RecvHyd:     physics.NewReceiveBoundary(ex),
		taskid.SetBHyd:     physics.NewSetBoundaries(ex),
		taskid.Cons2Prim:   physics.NewPrimitives(toyEOS{}),
		taskid.PhyBVal:     physics.NewPhysicalBoundary(desc, toyPhysicalBoundary{}),
		taskid.UserWork:    physics.NewUserWork(desc, toyUserWorker{}),
		taskid.NewDt:       physics.NewNewBlockTimeStep(desc, toyTimestep{}),
		taskid.ClearAllBnd: physics.NewClearAllBoundary(toyBoundaryController{}),
	}
	for id, fn := range bodies {
		if err := l.SetBody(id, fn); err != nil {
			return err
		}
	}
	return nil
}
