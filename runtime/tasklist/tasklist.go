// Package tasklist builds the ordered, dependency-wired task graph for one
// multistage time-integration stage (spec.md §4.4 Task list construction).
// The construction order and dependency wiring are grounded directly on
// TimeIntegratorTaskList's AddTask call sequence in time_integrator.cpp.
package tasklist

import (
	"fmt"

	"github.com/philipjon/athenarun/model/taskid"
	"github.com/philipjon/athenarun/runtime/task"
)

// ErrUnknownTask is returned by SetBody when no task with the given id was
// added to the list.
type ErrUnknownTask struct{ ID taskid.ID }

func (e *ErrUnknownTask) Error() string {
	return fmt.Sprintf("tasklist: no task %s in this list", e.ID)
}

// ErrDuplicateTask is returned by Build if the same id would be added
// twice, which would indicate a builder bug rather than a spec scenario.
type ErrDuplicateTask struct{ ID taskid.ID }

func (e *ErrDuplicateTask) Error() string {
	return fmt.Sprintf("tasklist: task %s added twice", e.ID)
}

// List is the ordered task graph for one stage. Tasks are stored in the
// exact order they were added so the executor's scan order matches
// spec.md §4.5 ("scans the list in its fixed insertion order").
type List struct {
	tasks []task.Task
	index map[taskid.ID]int
}

// Tasks returns the list's tasks in insertion order. The returned slice
// must not be mutated; use SetBody to attach a Run function.
func (l *List) Tasks() []task.Task {
	return l.tasks
}

// Get returns the task registered under id, if any.
func (l *List) Get(id taskid.ID) (task.Task, bool) {
	i, ok := l.index[id]
	if !ok {
		return task.Task{}, false
	}
	return l.tasks[i], true
}

// SetBody attaches fn as the Run body of the task registered under id.
// Physics task bodies are wired in after the graph is built, so that graph
// construction stays independent of any particular family implementation.
func (l *List) SetBody(id taskid.ID, fn task.Fn) error {
	i, ok := l.index[id]
	if !ok {
		return &ErrUnknownTask{ID: id}
	}
	l.tasks[i].Run = fn
	return nil
}

type builder struct {
	opts Options
	list *List
}

func (b *builder) add(id, dep taskid.ID) {
	if _, exists := b.list.index[id]; exists {
		panic(&ErrDuplicateTask{ID: id})
	}
	b.list.index[id] = len(b.list.tasks)
	b.list.tasks = append(b.list.tasks, task.Task{
		ID:         id,
		Dependency: dep,
		LBTime:     taskid.LBTime(id),
	})
}

// Build assembles one stage's task graph under the given options. It
// mirrors, branch for branch, the AddTask call sequence of
// TimeIntegratorTaskList's constructor.
func Build(opts ...Option) (list *List, err error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	b := &builder{opts: o, list: &List{index: map[taskid.ID]int{}}}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	t := taskid.None

	// Diffusive fluxes, then hydro (and scalar) advective fluxes.
	if !o.STSEnabled {
		b.add(taskid.DiffuseHyd, t)
		if o.MHD {
			b.add(taskid.DiffuseFld, t)
			b.add(taskid.CalcHydFlx, taskid.DiffuseHyd|taskid.DiffuseFld)
		} else {
			b.add(taskid.CalcHydFlx, taskid.DiffuseHyd)
		}
		if o.Scalars {
			b.add(taskid.DiffuseSclr, t)
			b.add(taskid.CalcSclrFlx, taskid.CalcHydFlx|taskid.DiffuseSclr)
		}
	} else {
		b.add(taskid.CalcHydFlx, t)
		if o.Scalars {
			b.add(taskid.CalcSclrFlx, taskid.CalcHydFlx)
		}
	}

	if o.Multilevel {
		b.add(taskid.SendHydFlx, taskid.CalcHydFlx)
		b.add(taskid.RecvHydFlx, taskid.CalcHydFlx)
		b.add(taskid.IntHyd, taskid.RecvHydFlx)
	} else {
		b.add(taskid.IntHyd, taskid.CalcHydFlx)
	}

	if o.Radiation {
		b.add(taskid.SrcTermHyd, taskid.IntHyd|taskid.SrcTermRad)
	} else {
		b.add(taskid.SrcTermHyd, taskid.IntHyd)
	}
	b.add(taskid.SendHyd, taskid.SrcTermHyd)
	b.add(taskid.RecvHyd, t)
	b.add(taskid.SetBHyd, taskid.RecvHyd|taskid.SrcTermHyd)
	if o.ShearingBox {
		b.add(taskid.SendHydSh, taskid.SetBHyd)
		b.add(taskid.RecvHydSh, taskid.SetBHyd)
	}

	if o.MHD {
		b.add(taskid.CalcFldFlx, taskid.CalcHydFlx)
		b.add(taskid.SendFldFlx, taskid.CalcFldFlx)
		b.add(taskid.RecvFldFlx, taskid.SendFldFlx)
		if o.ShearingBox {
			b.add(taskid.SendEMFSh, taskid.RecvFldFlx)
			b.add(taskid.RecvEMFSh, taskid.RecvFldFlx)
			b.add(taskid.RmapEMFSh, taskid.RecvEMFSh)
			b.add(taskid.IntFld, taskid.RmapEMFSh)
		} else {
			b.add(taskid.IntFld, taskid.RecvFldFlx)
		}
		b.add(taskid.SendFld, taskid.IntFld)
		b.add(taskid.RecvFld, t)
		b.add(taskid.SetBFld, taskid.RecvFld|taskid.IntFld)
		if o.ShearingBox {
			b.add(taskid.SendFldSh, taskid.SetBFld)
			b.add(taskid.RecvFldSh, taskid.SetBFld)
		}
	}

	if o.Scalars {
		if o.Multilevel {
			b.add(taskid.SendSclrFlx, taskid.CalcSclrFlx)
			b.add(taskid.RecvSclrFlx, taskid.CalcSclrFlx)
			b.add(taskid.IntSclr, taskid.RecvSclrFlx)
		} else {
			b.add(taskid.IntSclr, taskid.CalcSclrFlx)
		}
		b.add(taskid.SendSclr, taskid.IntSclr)
		b.add(taskid.RecvSclr, t)
		b.add(taskid.SetBSclr, taskid.RecvSclr|taskid.IntSclr)
	}

	if o.Radiation {
		b.add(taskid.CalcRadFlx, t)
		if o.Multilevel {
			b.add(taskid.SendRadFlx, taskid.CalcRadFlx)
			b.add(taskid.RecvRadFlx, taskid.CalcRadFlx)
			b.add(taskid.IntRad, taskid.RecvRadFlx)
		} else {
			b.add(taskid.IntRad, taskid.CalcRadFlx)
		}
		b.add(taskid.SrcTermRad, taskid.IntRad)
		b.add(taskid.SendRad, taskid.SrcTermRad|taskid.SrcTermHyd)
		b.add(taskid.RecvRad, t)
		b.add(taskid.SetBRad, taskid.RecvRad|taskid.SrcTermRad)
	}

	if o.Multilevel {
		req := taskid.SendHyd | taskid.SetBHyd
		if o.MHD {
			req |= taskid.SendFld | taskid.SetBFld
		}
		if o.Scalars {
			req |= taskid.SendSclr | taskid.SetBSclr
		}
		if o.Radiation {
			req |= taskid.SendRad | taskid.SetBRad
		}
		b.add(taskid.Prolong, req)
	}

	var con2primReq taskid.ID
	if o.Multilevel {
		con2primReq = taskid.Prolong
	} else {
		con2primReq = taskid.SetBHyd
		if o.ShearingBox {
			con2primReq |= taskid.RecvHydSh
		}
		if o.MHD {
			con2primReq |= taskid.SetBFld
			if o.ShearingBox {
				con2primReq |= taskid.RecvFldSh | taskid.RmapEMFSh
			}
		}
		if o.Scalars {
			con2primReq |= taskid.SetBSclr
		}
		if o.Radiation {
			con2primReq |= taskid.SetBRad
		}
	}
	b.add(taskid.Cons2Prim, con2primReq)

	b.add(taskid.PhyBVal, taskid.Cons2Prim)
	if o.Radiation {
		b.add(taskid.CalcOpacity, taskid.PhyBVal)
		b.add(taskid.UserWork, taskid.CalcOpacity)
	} else {
		b.add(taskid.UserWork, taskid.PhyBVal)
	}
	b.add(taskid.NewDt, taskid.UserWork)
	if o.Adaptive {
		b.add(taskid.FlagAMR, taskid.UserWork)
		b.add(taskid.ClearAllBnd, taskid.FlagAMR)
	} else {
		b.add(taskid.ClearAllBnd, taskid.NewDt)
	}

	return b.list, nil
}
