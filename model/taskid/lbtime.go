package taskid

// lbTimeFalse lists every id whose wall time must NOT be accumulated for
// load balancing — every RECV_* task (spec.md §4.3: "Receives (RECV_*) are
// always lb_time=false"), grounded on time_integrator.cpp's AddTask switch
// where every RECV_* case sets task_list_[ntasks].lb_time = false and every
// other case sets it true.
var lbTimeFalse = map[ID]bool{
	RecvHydFlx:  true,
	RecvFldFlx:  true,
	RecvRadFlx:  true,
	RecvSclrFlx: true,
	RecvHyd:     true,
	RecvFld:     true,
	RecvRad:     true,
	RecvSclr:    true,
	RecvHydSh:   true,
	RecvFldSh:   true,
	RecvEMFSh:   true,
}

// LBTime reports whether a task's execution time should count toward
// load-balancing accounting.
func LBTime(id ID) bool {
	return !lbTimeFalse[id]
}
