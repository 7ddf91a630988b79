package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
// Caller identity and role come from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn resolves the caller's shift window and opens a session
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut closes the caller's active session
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetMyAttendance retrieves the caller's attendance history
	GetMyAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// Report retrieves attendance rows; admins see everyone, workers
	// only themselves
	Report(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error)
}
