package user

import (
	"context"
	"time"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create inserts a new user, hashed password included
	Create(ctx context.Context, u User) (User, error)

	// GetByWorkerID retrieves a user by worker ID
	GetByWorkerID(ctx context.Context, workerID string) (User, error)

	// List retrieves all users ordered by worker ID
	List(ctx context.Context) ([]User, error)

	// ListWorkers retrieves users with the worker role
	ListWorkers(ctx context.Context) ([]User, error)

	// ListWorkersWithoutAttendance retrieves workers on the given shift with
	// no attendance row for the work date. Read-only, used by the reminder job.
	ListWorkersWithoutAttendance(ctx context.Context, shiftID int64, workDate time.Time) ([]User, error)

	// Delete removes a user by worker ID
	Delete(ctx context.Context, workerID string) error
}
