package physics

import (
	"context"
	"log"

	"github.com/philipjon/athenarun/model/integrator"
	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewProlongation returns the PROLONG task body: prolongate coarse-to-fine
// boundary data at this stage's end time, for SMR/AMR meshes only (spec.md
// §4.6, §4.4 "pm->multilevel").
func NewProlongation(desc integrator.Descriptor, prolongator Prolongator) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		tEnd := blk.Abscissae.At(stage)[0]
		dt := desc.Stage(stage).Beta * blk.Dt
		if err := prolongator.ProlongateBoundaries(tEnd, dt); err != nil {
			log.Printf("athenarun: block %s: prolongate boundaries: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}
