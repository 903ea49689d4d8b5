// Package executor drives one block through one stage of a built task
// list, and a cooperative outer Driver sweeps many blocks through many
// stages (spec.md §4.5 Scheduling loop, §5 Cooperative multi-block driver).
package executor

import (
	"context"
	"fmt"

	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
	"github.com/philipjon/athenarun/runtime/tasklist"
	"github.com/philipjon/athenarun/tracing"
)

// RunStage drives blk through one sweep of list for the given stage,
// scanning tasks in the list's fixed insertion order (spec.md §4.5). A
// task returning task.Fail is left pending — the call still returns with
// done=false so the outer driver can try another block and come back
// later; this is the only suspension point, and it never blocks any other
// block. A task returning task.Next immediately triggers a rescan from the
// top of the list, before this call yields back to the driver, so a
// just-unblocked successor need not wait for the next outer sweep.
func RunStage(ctx context.Context, blk *block.Block, list *tasklist.List, stage int) (done bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "executor.RunStage", "INTERNAL")
	defer tracing.EndSpan(span, nil)
	span.WithAttributes(map[string]string{"block.id": blk.ID, "stage": fmt.Sprint(stage)})

	tasks := list.Tasks()
	completion := blk.Completion()

	for {
		rescan := false
		for i := 0; i < len(tasks); i++ {
			t := tasks[i]
			if completion.Complete(t.ID) {
				continue
			}
			if !t.Ready(completion.Mask()) {
				continue
			}
			switch invoke(ctx, t, blk, stage) {
			case task.Success:
				completion.Mark(t.ID)
			case task.Next:
				completion.Mark(t.ID)
				rescan = true
			case task.Fail:
				// leave pending; the outer driver will give this block
				// another sweep once other blocks have made progress.
			}
			if rescan {
				break
			}
		}
		if rescan {
			continue
		}
		return completion.Count() == len(tasks), nil
	}
}

func invoke(ctx context.Context, t task.Task, blk *block.Block, stage int) task.Status {
	ctx, span := tracing.StartSpan(ctx, "executor.task", "INTERNAL")
	defer tracing.EndSpan(span, nil)
	span.AddEvent(t.ID.String(), map[string]string{"block.id": blk.ID})
	if t.Run == nil {
		return task.Fail
	}
	return t.Run(ctx, blk, stage)
}

// ErrDeadlock is returned by Driver.RunStage when a full round over every
// pending block completes a sweep with zero blocks finishing and zero
// newly-completed tasks anywhere, meaning no RECV_* is ever going to
// arrive and the mesh-wide stage can never finish.
type ErrDeadlock struct {
	Stage     int
	Remaining int
}

func (e *ErrDeadlock) Error() string {
	return fmt.Sprintf("executor: stage %d deadlocked with %d block(s) still unfinished", e.Stage, e.Remaining)
}

// Driver sweeps a fixed set of blocks through a single shared task list,
// one block at a time, repeating full rounds until every block finishes
// the stage (spec.md §5: "the outer driver sweeps all blocks repeatedly").
// It carries no state between stages; callers call RunStage once per
// stage, in order.
type Driver struct {
	Blocks []*block.Block
	List   *tasklist.List
}

// RunStage sweeps every block through the given stage of d.List until all
// finish, or until a full round makes no progress anywhere.
func (d *Driver) RunStage(ctx context.Context, stage int) error {
	pending := make([]*block.Block, len(d.Blocks))
	copy(pending, d.Blocks)

	for len(pending) > 0 {
		progressed := false
		next := pending[:0]
		for _, blk := range pending {
			before := blk.Completion().Count()
			done, err := RunStage(ctx, blk, d.List, stage)
			if err != nil {
				return err
			}
			if blk.Completion().Count() > before {
				progressed = true
			}
			if !done {
				next = append(next, blk)
			} else {
				progressed = true
			}
		}
		pending = next
		if !progressed {
			return &ErrDeadlock{Stage: stage, Remaining: len(pending)}
		}
	}
	return nil
}
