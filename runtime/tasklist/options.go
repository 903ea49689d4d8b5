package tasklist

// Options controls which optional task families a built list includes,
// grounded on the teacher's functional-options pattern (option.go) and the
// compile-time switches AddTask branches on in time_integrator.cpp
// (MAGNETIC_FIELDS_ENABLED, NSCALARS, RADIATION_ENABLED, multilevel,
// SHEARING_BOX, STS_ENABLED, fluid_setup).
type Options struct {
	MHD          bool
	Scalars      bool
	Radiation    bool
	Multilevel   bool
	ShearingBox  bool
	STSEnabled   bool
	Adaptive     bool
	FluidEvolved bool
}

// Option mutates an Options value during Build.
type Option func(*Options)

// WithMHD enables the CALC_FLDFLX/.../SETB_FLD induction family.
func WithMHD() Option { return func(o *Options) { o.MHD = true } }

// WithScalars enables the passive-scalar flux/integrate/send/recv family.
func WithScalars() Option { return func(o *Options) { o.Scalars = true } }

// WithRadiation enables the radiation flux/integrate/source-term/send/recv
// family and the opacity step before USERWORK.
func WithRadiation() Option { return func(o *Options) { o.Radiation = true } }

// WithMultilevel enables SMR/AMR-only receive-gated integration and the
// PROLONG step.
func WithMultilevel() Option { return func(o *Options) { o.Multilevel = true } }

// WithShearingBox enables the shearing-box boundary tasks for hydro, field
// and EMF.
func WithShearingBox() Option { return func(o *Options) { o.ShearingBox = true } }

// WithSuperTimeStepping skips the per-stage diffusive flux tasks, matching
// STS_ENABLED's own diffusion substepping outside this task list.
func WithSuperTimeStepping() Option { return func(o *Options) { o.STSEnabled = true } }

// WithAdaptive enables FLAG_AMR ahead of CLEAR_ALLBND.
func WithAdaptive() Option { return func(o *Options) { o.Adaptive = true } }

// WithFluidEvolved records that hydro is actually being time-advanced (as
// opposed to held fixed). Nothing reads the flag: the task graph does not
// change, and model/config's CFL clamp and warning apply whether or not it
// is set.
func WithFluidEvolved() Option { return func(o *Options) { o.FluidEvolved = true } }
