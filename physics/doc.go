// Package physics supplies the task bodies the tasklist graph invokes: the
// per-family weighted-average integration step, boundary exchange, source
// terms, diffusion, primitive recovery, prolongation, opacity and the
// trailing housekeeping tasks (spec.md §4.6). None of this package knows
// the mesh's floating-point storage layout — it only calls back into
// collaborator interfaces supplied by the surrounding application, the way
// MeshBlock's own members (Hydro, Field, EquationOfState, ...) are the
// actual numerical collaborators behind TimeIntegratorTaskList's task
// bodies.
package physics
