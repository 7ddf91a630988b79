package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/auth"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Too-early carries the shift name and start, keep the message
	var tooEarly *attendance.TooEarlyError
	if errors.As(err, &tooEarly) {
		BadRequest(w, tooEarly.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOnlyWorkersCanCheckIn),
		errors.Is(err, attendance.ErrOnlyWorkersCanCheckOut):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrActiveSessionExists),
		errors.Is(err, attendance.ErrAlreadyCheckedInToday):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrShiftNotAssigned):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrTooLateToCheckIn),
		errors.Is(err, attendance.ErrNoActiveCheckIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrWorkerIDExists):
		Conflict(w, "Worker ID already exists")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrOnlyWorkersCanRequestLeave):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
