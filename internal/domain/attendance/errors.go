package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in errors
	ErrOnlyWorkersCanCheckIn = errors.New("Only workers can check in")
	ErrActiveSessionExists   = errors.New("Already checked in (active session)")
	ErrShiftNotAssigned      = errors.New("Shift not assigned")
	ErrAlreadyCheckedInToday = errors.New("Already checked in today")
	ErrTooLateToCheckIn      = errors.New("Too late — more than 5 hours after shift start")

	// Check-out errors
	ErrOnlyWorkersCanCheckOut = errors.New("Only workers can check out")
	ErrNoActiveCheckIn        = errors.New("No active check-in found")

	// General errors
	ErrAttendanceNotFound = errors.New("Attendance record not found")
)

// TooEarlyError rejects a check-in attempted more than an hour before the
// shift starts; the message carries the shift so the worker knows when to
// come back.
type TooEarlyError struct {
	ShiftName string
	StartsAt  string
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("Too early — %s starts at %s", e.ShiftName, e.StartsAt)
}
