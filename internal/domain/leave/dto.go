package leave

import (
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	Reason   string `json:"reason"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	fromDate, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be YYYY-MM-DD",
		})
	}

	toDate, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be YYYY-MM-DD",
		})
	}

	if fromOK && toOK && toDate.Before(fromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	Status RequestStatus `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return ErrInvalidLeaveStatus
	}
	return nil
}

type LeaveRequestResponse struct {
	ID        string        `json:"id"`
	WorkerID  string        `json:"worker_id"`
	Reason    string        `json:"reason"`
	FromDate  string        `json:"from_date"`
	ToDate    string        `json:"to_date"`
	Status    RequestStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}
