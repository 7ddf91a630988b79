package user

import (
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	WorkerID string  `json:"worker_id"`
	Password string  `json:"password"`
	Role     Role    `json:"role"`
	Job      *string `json:"job"`
	Email    *string `json:"email"`
	ShiftID  *int64  `json:"shift_id"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or worker",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	WorkerID string  `json:"worker_id"`
	Role     Role    `json:"role"`
	Job      *string `json:"job"`
	Email    *string `json:"email"`
	ShiftID  *int64  `json:"shift_id"`
}

type WorkerResponse struct {
	WorkerID string  `json:"worker_id"`
	Job      *string `json:"job"`
}
