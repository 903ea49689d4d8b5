package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/philipjon/athenarun/model/taskid"
	"github.com/philipjon/athenarun/runtime/block"
)

func TestTaskReady(t *testing.T) {
	tk := Task{ID: taskid.IntHyd, Dependency: taskid.CalcHydFlx | taskid.SrcTermHyd}
	assert.False(t, tk.Ready(taskid.CalcHydFlx))
	assert.True(t, tk.Ready(taskid.CalcHydFlx|taskid.SrcTermHyd))
	assert.True(t, tk.Ready(taskid.CalcHydFlx|taskid.SrcTermHyd|taskid.RecvHyd))
}

func TestTaskRunInvokesBody(t *testing.T) {
	var invoked int
	tk := Task{
		ID: taskid.NewDt,
		Run: func(ctx context.Context, blk *block.Block, stage int) Status {
			invoked = stage
			return Success
		},
	}
	got := tk.Run(context.Background(), block.New(), 3)
	assert.Equal(t, Success, got)
	assert.Equal(t, 3, invoked)
}
