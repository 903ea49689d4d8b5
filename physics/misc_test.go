package physics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

type fakeUserWorker struct{ calls int }

func (f *fakeUserWorker) UserWorkInLoop() { f.calls++ }

type fakeTimestep struct{ calls int }

func (f *fakeTimestep) NewBlockTimeStep() { f.calls++ }

type fakeRefinement struct{ calls int }

func (f *fakeRefinement) CheckRefinementCondition() { f.calls++ }

func TestUserWorkOnlyRunsOnFinalStage(t *testing.T) {
	desc, err := integrator.Lookup("rk3")
	require.NoError(t, err)
	worker := &fakeUserWorker{}
	fn := NewUserWork(desc, worker)

	assert.Equal(t, task.Success, fn(context.Background(), block.New(), 1))
	assert.Equal(t, 0, worker.calls)

	assert.Equal(t, task.Success, fn(context.Background(), block.New(), desc.NStages))
	assert.Equal(t, 1, worker.calls)
}

func TestNewBlockTimeStepOnlyRunsOnFinalStage(t *testing.T) {
	desc, err := integrator.Lookup("rk2")
	require.NoError(t, err)
	calc := &fakeTimestep{}
	fn := NewNewBlockTimeStep(desc, calc)

	fn(context.Background(), block.New(), 1)
	assert.Equal(t, 0, calc.calls)
	fn(context.Background(), block.New(), desc.NStages)
	assert.Equal(t, 1, calc.calls)
}

func TestCheckRefinementOnlyRunsOnFinalStage(t *testing.T) {
	desc, err := integrator.Lookup("vl2")
	require.NoError(t, err)
	checker := &fakeRefinement{}
	fn := NewCheckRefinement(desc, checker)

	fn(context.Background(), block.New(), 1)
	assert.Equal(t, 0, checker.calls)
	fn(context.Background(), block.New(), desc.NStages)
	assert.Equal(t, 1, checker.calls)
}
