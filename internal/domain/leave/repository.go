package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves all leave requests, newest first
	List(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus sets the decision on a pending request.
	// ErrLeaveRequestAlreadyProcessed when the request is no longer pending.
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}
