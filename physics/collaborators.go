package physics

import "github.com/philipjon/athenarun/runtime/block"

// Averager computes a three-term weighted average into dst, the way
// MeshBlock::WeightedAve combines a register triplet (spec.md §4.2/§4.6).
type Averager interface {
	WeightedAve(dst, src1, src2 block.Slab, w [3]float64)
}

// FluxDivergence adds wght times the stored flux divergence into u, the way
// Hydro::AddFluxDivergence / Field::CT / Radiation::AddFluxDivergenceToAverage do.
type FluxDivergence interface {
	AddFluxDivergence(wght float64, u block.Slab)
}

// CoordSource adds the coordinate (geometric) source term contribution for
// curvilinear meshes, the way Coordinates::AddCoordTermsDivergence does for
// hydro only.
type CoordSource interface {
	AddCoordTermsDivergence(wght float64, bcc, u block.Slab)
}

// SourceTerms evaluates physical (non-coordinate) source terms at the
// stage's starting time, the way HydroSourceTerms::AddHydroSourceTerms and
// Radiation::AddSourceTerms do.
type SourceTerms interface {
	Defined() bool
	AddSourceTerms(tStart, dt float64, u block.Slab)
}

// Diffusion computes a family's diffusive fluxes, the way
// HydroDiffusion::CalcDiffusionFlux and FieldDiffusion::CalcDiffusionEMF do.
type Diffusion interface {
	Defined() bool
	CalcDiffusionFlux()
}

// BoundaryExchange is the Send/Receive/SetBoundaries trio every evolved
// family implements via its *BoundaryVariable collaborator.
type BoundaryExchange interface {
	SendBoundaryBuffers() error
	ReceiveBoundaryBuffers() (ready bool, err error)
	SetBoundaries() error
}

// ShearingBoxExchange is the additional shearing-box send/receive pair for
// hydro, field and EMF (spec.md §4.6 shearing-box variants).
type ShearingBoxExchange interface {
	SendShear() error
	ReceiveShear() (ready bool, err error)
}

// EMFRemapper performs the orbital-advection EMF remap after a
// shearing-box EMF receive (RMAP_EMFSH).
type EMFRemapper interface {
	RemapEMF() error
}

// Prolongator prolongates coarse-to-fine boundary data at the end of a
// stage for SMR/AMR meshes.
type Prolongator interface {
	ProlongateBoundaries(tEnd, dt float64) error
}

// ConservedToPrimitive recovers primitives from the just-updated conserved
// variables, writing into a scratch register that Primitives then swaps
// into place (spec.md §4.6 CONS2PRIM).
type ConservedToPrimitive interface {
	ConservedToPrimitive(u, w, w1 block.Slab)
}

// PhysicalBoundaryApplier applies user/physical boundary conditions on the
// primitive variables at the stage's end time.
type PhysicalBoundaryApplier interface {
	ApplyPhysicalBoundaries(tEnd, dt float64) error
}

// OpacityCalculator updates radiation opacities from the current
// primitives.
type OpacityCalculator interface {
	UpdateOpacity()
}

// UserWorker runs user-supplied end-of-stage work, invoked only on the
// final stage.
type UserWorker interface {
	UserWorkInLoop()
}

// TimestepCalculator computes the block's next timestep from the current
// state, invoked only on the final stage.
type TimestepCalculator interface {
	NewBlockTimeStep()
}

// RefinementChecker evaluates whether the block should be flagged for
// AMR refinement or derefinement, invoked only on the final stage.
type RefinementChecker interface {
	CheckRefinementCondition()
}

// BoundaryController starts and clears the communication subset around a
// stage (spec.md §4.2 StartupTaskList / CLEAR_ALLBND).
type BoundaryController interface {
	StartReceiving()
	ClearBoundary()
}
