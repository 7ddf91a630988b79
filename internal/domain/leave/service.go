package leave

import "context"

// LeaveService defines business logic for the leave request workflow.
type LeaveService interface {
	// Submit files a leave request for the calling worker
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// List retrieves all leave requests, newest first
	List(ctx context.Context) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a pending request
	Decide(ctx context.Context, id string, req DecideLeaveRequest) (LeaveRequestResponse, error)
}
