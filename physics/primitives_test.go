package physics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

type fakeEOS struct{ calls int }

func (f *fakeEOS) ConservedToPrimitive(u, w, w1 block.Slab) { f.calls++ }

func TestPrimitivesSwapsWIntoPlace(t *testing.T) {
	blk := block.New()
	w, w1 := &fakeSlab{name: "w"}, &fakeSlab{name: "w1"}
	blk.Hydro.W, blk.Hydro.W1 = w, w1
	blk.Hydro.U = &fakeSlab{name: "u"}

	eos := &fakeEOS{}
	fn := NewPrimitives(eos)
	status := fn(context.Background(), blk, 1)

	require.Equal(t, task.Success, status)
	assert.Equal(t, 1, eos.calls)
	assert.Same(t, w, blk.Hydro.W1, "w1 now holds the previous stage's W for the next call's scratch write")
	assert.Same(t, w1, blk.Hydro.W, "w now holds this stage's freshly recovered primitives")
}

func TestPrimitivesRadAlsoSwapsRadiationW(t *testing.T) {
	blk := block.New()
	blk.Hydro.W, blk.Hydro.W1 = &fakeSlab{name: "hw"}, &fakeSlab{name: "hw1"}
	radW, radW1 := &fakeSlab{name: "rw"}, &fakeSlab{name: "rw1"}
	blk.Radiation.W, blk.Radiation.W1 = radW, radW1

	fn := NewPrimitivesRad(&fakeEOS{}, &fakeEOS{})
	fn(context.Background(), blk, 1)

	assert.Same(t, radW, blk.Radiation.W1)
	assert.Same(t, radW1, blk.Radiation.W)
}
