// Package task defines the invokable unit the executor drives: a single-bit
// identity, a dependency mask over other task ids, and a function body
// (spec.md §3 Task, §4.5 Scheduling loop).
package task

import (
	"context"

	"github.com/philipjon/athenarun/model/taskid"
	"github.com/philipjon/athenarun/runtime/block"
)

// Fn is one task's body. It receives the stage number (1-based) alongside
// the block so families like ssprk5_4's penultimate stage can special-case
// their own behavior without the executor knowing about it (spec.md §9).
type Fn func(ctx context.Context, blk *block.Block, stage int) Status

// Task is one entry of a built task list (runtime/tasklist).
type Task struct {
	ID         taskid.ID
	Dependency taskid.ID
	LBTime     bool
	Run        Fn
}

// Ready reports whether every bit of t.Dependency is already set in mask.
func (t Task) Ready(mask taskid.ID) bool {
	return mask&t.Dependency == t.Dependency
}
