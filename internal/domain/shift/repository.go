package shift

import "context"

// ShiftRepository defines data access methods for the shift catalog.
type ShiftRepository interface {
	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id int64) (Shift, error)

	// GetByWorkerID retrieves the shift assigned to a worker, or
	// ErrShiftNotFound when the worker has no assignment
	GetByWorkerID(ctx context.Context, workerID string) (Shift, error)

	// List retrieves all shifts
	List(ctx context.Context) ([]Shift, error)
}
