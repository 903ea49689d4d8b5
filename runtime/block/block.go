// Package block owns the per-mesh-block storage registers and completion
// state that the DAG executor (runtime/executor) mutates while driving one
// stage of one timestep (spec.md §3 Storage registers per block, Completion
// state).
package block

import (
	"github.com/google/uuid"
	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/model/taskid"
)

// FluxSet holds the three directional flux arrays for one evolved family.
type FluxSet struct {
	X1, X2, X3 Slab
}

// Family groups the registers + fluxes for one evolved field family.
type Family struct {
	Registers
	Flux FluxSet
}

// Block is one mesh block's time-integration state. It owns its storage
// registers exclusively — no other block ever touches them (spec.md §5
// "Each block's registers are owned exclusively by that block's tasks").
type Block struct {
	ID string

	Hydro     Family
	Field     Family
	Scalars   Family
	Radiation Family

	// BCC is the cell-centered magnetic field used by hydro's coordinate
	// source term (spec.md §4.6).
	BCC Slab

	Abscissae integrator.Abscissae

	// Dt is the mesh-wide timestep for the current cycle, set by the
	// controller before every stage to the same value for the whole cycle
	// (spec.md §3: the per-block stage_abscissae table is derived from this
	// single value, matching pmb->pmy_mesh->dt).
	Dt float64

	completion CompletionState
}

// New allocates a block with a fresh identity. Callers attach Family
// registers via the exported fields once storage is allocated by the
// surrounding mesh code (out of scope for this package, spec.md §1).
func New() *Block {
	return &Block{ID: uuid.New().String()}
}

// StartStage resets the per-stage completion bookkeeping. Stage 1
// additionally clears u1 and seeds u2=u for the families that have a u2
// register (hydro, scalars, radiation — never field, spec.md §3 invariants,
// testable property 4) and (re)allocates the stage-abscissa table, seeding
// row 0 to zero (spec.md §4.2).
func (b *Block) StartStage(stage, nstages int, usesU2 bool, copyUToU2 func(u, u2 Slab)) {
	b.completion = CompletionState{}
	if stage == 1 {
		b.Abscissae = integrator.NewAbscissae(nstages)
		b.Hydro.ResetStage1(usesU2, true, copyUToU2)
		b.Field.ResetStage1(usesU2, false, copyUToU2)
		b.Scalars.ResetStage1(usesU2, true, copyUToU2)
		b.Radiation.ResetStage1(usesU2, true, copyUToU2)
	}
}

// Completion exposes the block's per-stage completion-mask tracker to the
// executor.
func (b *Block) Completion() *CompletionState {
	return &b.completion
}

// CompletionState is the per-block per-stage bitmask of finished task ids
// plus a finished-task count (spec.md §3 Completion state).
type CompletionState struct {
	mask  taskid.ID
	count int
}

// Ready reports whether dep's bits are all present in the completion mask,
// i.e. the task may run (spec.md §4.5 step 2).
func (c *CompletionState) Ready(dep taskid.ID) bool {
	return c.mask&dep == dep
}

// Complete reports whether id has already finished.
func (c *CompletionState) Complete(id taskid.ID) bool {
	return c.mask&id == id
}

// Mark records id as finished, OR-ing its bit into the mask (spec.md §4.5
// step 3).
func (c *CompletionState) Mark(id taskid.ID) {
	if c.Complete(id) {
		return
	}
	c.mask |= id
	c.count++
}

// Count returns how many tasks have finished this stage.
func (c *CompletionState) Count() int {
	return c.count
}

// Mask returns the raw completion bitmask, primarily for tests.
func (c *CompletionState) Mask() taskid.ID {
	return c.mask
}
