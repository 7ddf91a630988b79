package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrInvalidLeaveStatus           = errors.New("Invalid status")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrOnlyWorkersCanRequestLeave   = errors.New("Only workers can request leave")
)
