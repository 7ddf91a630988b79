package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

type LeaveRequest struct {
	ID        string
	WorkerID  string
	Reason    string
	FromDate  time.Time
	ToDate    time.Time
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
