package physics

import (
	"context"
	"log"

	"github.com/philipjon/athenarun/runtime/block"
	"github.com/philipjon/athenarun/runtime/task"
)

// NewSendBoundary returns a SEND_* task body: send this family's buffers to
// neighboring blocks. Every family's send task (spec.md §4.6) has this same
// shape, so one constructor serves hydro, field, scalars and radiation.
func NewSendBoundary(ex BoundaryExchange) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if err := ex.SendBoundaryBuffers(); err != nil {
			log.Printf("athenarun: block %s: send boundary buffers: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}

// NewReceiveBoundary returns a RECV_* task body. A not-yet-arrived buffer
// is the one ordinary, expected Fail outcome in the whole task catalogue —
// it is always lb_time=false (model/taskid.LBTime) and simply retried on
// the next sweep (spec.md §4.3, §5).
func NewReceiveBoundary(ex BoundaryExchange) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		ready, err := ex.ReceiveBoundaryBuffers()
		if err != nil {
			log.Printf("athenarun: block %s: receive boundary buffers: %v", blk.ID, err)
			return task.Fail
		}
		if !ready {
			return task.Fail
		}
		return task.Success
	}
}

// NewSetBoundaries returns a SETB_* task body: commit the received buffers
// into the family's ghost cells.
func NewSetBoundaries(ex BoundaryExchange) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if err := ex.SetBoundaries(); err != nil {
			log.Printf("athenarun: block %s: set boundaries: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}

// NewSendShear returns a SEND_*SH task body for the hydro/field
// shearing-box boundary exchange.
func NewSendShear(ex ShearingBoxExchange) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if err := ex.SendShear(); err != nil {
			log.Printf("athenarun: block %s: send shear: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}

// NewReceiveShear returns a RECV_*SH task body.
func NewReceiveShear(ex ShearingBoxExchange) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		ready, err := ex.ReceiveShear()
		if err != nil {
			log.Printf("athenarun: block %s: receive shear: %v", blk.ID, err)
			return task.Fail
		}
		if !ready {
			return task.Fail
		}
		return task.Success
	}
}

// NewRemapEMFShear returns the RMAP_EMFSH task body.
func NewRemapEMFShear(remapper EMFRemapper) task.Fn {
	return func(ctx context.Context, blk *block.Block, stage int) task.Status {
		if err := remapper.RemapEMF(); err != nil {
			log.Printf("athenarun: block %s: remap EMF shear: %v", blk.ID, err)
			return task.Fail
		}
		return task.Success
	}
}
