package integrator

// Abscissae is the per-stage time-offset table abs[stage][reg] described in
// spec.md §3/§4.2, reg in {0:u, 1:u1, 2:u2}. Index 0 holds the stage-0
// (timestep start) values, which are always zero.
type Abscissae [][3]float64

// NewAbscissae allocates the table for nstages and seeds stage 0 to zero, as
// StartupTaskList does at the start of stage 1 (spec.md §4.2).
func NewAbscissae(nstages int) Abscissae {
	return make(Abscissae, nstages+1)
}

// Advance computes abs[stage] from abs[stage-1] using the stage's weights
// and the timestep dt, following the recurrence in spec.md §4.2:
//
//	abs[l][1] = abs[l-1][1] + delta_l * abs[l-1][0]
//	abs[l][0] = gamma1_l*abs[l-1][0] + gamma2_l*abs[l][1] + gamma3_l*abs[l-1][2] + beta_l*dt
//	abs[l][2] = 0
//
// The one exception is SSPRK(5,4)'s stage 4: its penultimate hack leaves
// u2 = -u^n + PenultimateHackBeta*dt*F, so abs[4][2] = PenultimateHackBeta*dt,
// which stage 5 (gamma3 = 1) folds back into abs[5][0] = dt.
func (a Abscissae) Advance(stage int, w StageWeights, dt float64) {
	prev := a[stage-1]
	cur := [3]float64{}
	cur[1] = prev[1] + w.Delta*prev[0]
	cur[0] = w.Gamma1*prev[0] + w.Gamma2*cur[1] + w.Gamma3*prev[2] + w.Beta*dt
	cur[2] = 0
	if stage == 4 && w == registry["ssprk5_4"].Stages[3] {
		cur[2] = PenultimateHackBeta * dt
	}
	a[stage] = cur
}

// At returns the table row for the given stage (0-based, 0 = start of
// timestep).
func (a Abscissae) At(stage int) [3]float64 {
	return a[stage]
}
