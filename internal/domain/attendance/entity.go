package attendance

import (
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOnTime    Status = "On time"
	StatusLate      Status = "Late"
	StatusLeftEarly Status = "Left early"
)

// Attendance is one worker-day of attendance. A record with a nil
// CheckoutTime is an active session; closing it is one-way.
type Attendance struct {
	ID            int64
	WorkerID      string
	CheckinTime   time.Time
	CheckoutTime  *time.Time
	WorkDate      time.Time
	ShiftID       int64
	Status        Status
	HoursWorked   *decimal.Decimal
	OvertimeHours *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joins
	Shift *shift.Shift
	Job   *string
}
