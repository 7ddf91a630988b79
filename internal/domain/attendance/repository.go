package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a check-in row. A unique-violation on the
	// (worker_id, work_date) constraint maps to ErrAlreadyCheckedInToday,
	// one on the open-session index to ErrActiveSessionExists.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOpenSession retrieves the most recent record with a null checkout
	// for the worker, shift times joined in. ErrNoActiveCheckIn when none.
	GetOpenSession(ctx context.Context, workerID string) (Attendance, error)

	// GetByWorkerAndDate retrieves the record for a specific work date.
	// Used to prevent double check-in; nil when none exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*Attendance, error)

	// Close sets the checkout fields on a located record
	Close(ctx context.Context, id int64, checkout time.Time, hours, overtime decimal.Decimal, status Status) error

	// ListByWorker retrieves a worker's records ordered by work date descending
	ListByWorker(ctx context.Context, workerID string) ([]Attendance, error)

	// List retrieves all records ordered by work date descending
	List(ctx context.Context) ([]Attendance, error)
}
