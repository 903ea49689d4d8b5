// Package athenarun wires the multistage time-integration task list
// together: a chosen integrator scheme, a built task graph, and the
// cooperative multi-block executor that drives it (spec.md §1 Overview).
// It replaces the teacher's root Service/option.go/runtime.go facade with
// a narrower Controller scoped to this one concern.
package athenarun

import (
	"context"
	"fmt"

	"github.com/philipjon/athenarun/model/config"
	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/executor"
	"github.com/philipjon/athenarun/runtime/tasklist"
	"github.com/philipjon/athenarun/tracing"
)

// Controller owns one mesh's set of blocks, the integration scheme they
// share, and the task graph built for the active physics configuration.
type Controller struct {
	cfg    *config.Config
	desc   integrator.Descriptor
	ndim   int
	tlOpts []tasklist.Option
	wire   func(*tasklist.List, integrator.Descriptor) error

	list   *tasklist.List
	blocks []*block.Block
}

// Option configures a Controller at construction time, grounded on the
// teacher's functional-options pattern (option.go).
type Option func(*Controller)

// WithConfig sets the time-integrator configuration (scheme name, CFL
// number). If omitted, config.DefaultConfig() is used.
func WithConfig(cfg *config.Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithDimensionality sets the spatial dimensionality used to resolve a
// dimensionality-dependent CFL limit (only vl2 has one, spec.md §4.1).
func WithDimensionality(ndim int) Option {
	return func(c *Controller) { c.ndim = ndim }
}

// WithTaskListOptions supplies the physics toggles (MHD, scalars,
// radiation, multilevel, shearing box, STS, adaptive) used to build the
// task graph (spec.md §4.4).
func WithTaskListOptions(opts ...tasklist.Option) Option {
	return func(c *Controller) { c.tlOpts = append(c.tlOpts, opts...) }
}

// WithTaskBodies supplies a callback that attaches physics.New* task
// bodies to the built list via list.SetBody. It receives the resolved
// integrator descriptor so task bodies that gate on stage count (USERWORK,
// NEW_DT, FLAG_AMR) or scale by stage weights can be built against the
// scheme actually in effect. Kept as a callback rather than a fixed struct
// of collaborators so the physics package stays decoupled from this wiring
// layer.
func WithTaskBodies(wire func(*tasklist.List, integrator.Descriptor) error) Option {
	return func(c *Controller) { c.wire = wire }
}

// WithBlocks registers the blocks this controller drives through each
// timestep.
func WithBlocks(blocks ...*block.Block) Option {
	return func(c *Controller) { c.blocks = append(c.blocks, blocks...) }
}

// NewController builds the task graph for the given options and returns a
// ready-to-run Controller.
func NewController(opts ...Option) (*Controller, error) {
	c := &Controller{cfg: config.DefaultConfig(), ndim: 3}
	for _, apply := range opts {
		apply(c)
	}

	if err := c.cfg.Validate(c.ndim); err != nil {
		return nil, fmt.Errorf("athenarun: %w", err)
	}
	desc, err := integrator.Lookup(c.cfg.Time.Integrator)
	if err != nil {
		return nil, fmt.Errorf("athenarun: %w", err)
	}
	c.desc = desc

	list, err := tasklist.Build(c.tlOpts...)
	if err != nil {
		return nil, fmt.Errorf("athenarun: build task list: %w", err)
	}
	c.list = list
	if c.wire != nil {
		if err := c.wire(list, desc); err != nil {
			return nil, fmt.Errorf("athenarun: wire task bodies: %w", err)
		}
	}
	return c, nil
}

// Integrator returns the resolved integration scheme descriptor.
func (c *Controller) Integrator() integrator.Descriptor {
	return c.desc
}

// AddBlock registers an additional block with the controller.
func (c *Controller) AddBlock(blk *block.Block) {
	c.blocks = append(c.blocks, blk)
}

// RunTimestep advances every registered block through all of the active
// scheme's stages for one mesh-wide timestep dt (spec.md §4.2 Multistage
// time integration, §5 Cooperative multi-block driver).
func (c *Controller) RunTimestep(ctx context.Context, dt float64) error {
	ctx, span := tracing.StartSpan(ctx, "athenarun.RunTimestep", "INTERNAL")
	defer tracing.EndSpan(span, nil)
	span.WithAttributes(map[string]string{"integrator": c.desc.Name, "dt": fmt.Sprint(dt)})

	usesU2 := c.desc.Name == "ssprk5_4"
	for stage := 1; stage <= c.desc.NStages; stage++ {
		for _, blk := range c.blocks {
			blk.Dt = dt
			blk.StartStage(stage, c.desc.NStages, usesU2, copyUToU2)
			blk.Abscissae.Advance(stage, c.desc.Stage(stage), dt)
		}
		driver := &executor.Driver{Blocks: c.blocks, List: c.list}
		if err := driver.RunStage(ctx, stage); err != nil {
			return fmt.Errorf("athenarun: stage %d: %w", stage, err)
		}
	}
	return nil
}

// copyUToU2 seeds u2 = u at stage 1 for ssprk5_4, matching
// StartupTaskList's `ph->u2 = ph->u` assignment. It relies on Slab's Zero
// being the only structural operation the core needs to know about; a real
// Slab implementation is expected to also support a plain value copy,
// reachable here through a narrow local interface so this package still
// never interprets storage contents.
func copyUToU2(u, u2 block.Slab) {
	type copier interface{ CopyFrom(block.Slab) }
	if c, ok := u2.(copier); ok {
		c.CopyFrom(u)
	}
}
