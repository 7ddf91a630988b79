package attendance

import (
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInResponse struct {
	Status      Status `json:"status"`
	WorkDate    string `json:"work_date"`
	ShiftName   string `json:"shift_name"`
	CheckinTime string `json:"checkin_time"`
}

type CheckOutResponse struct {
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Status        Status          `json:"status"`
	CheckinTime   string          `json:"checkin_time"`
	CheckoutTime  string          `json:"checkout_time"`
}

type AttendanceResponse struct {
	ID            int64            `json:"id"`
	WorkerID      string           `json:"worker_id"`
	WorkDate      string           `json:"work_date"`
	ShiftName     *string          `json:"shift_name,omitempty"`
	Job           *string          `json:"job,omitempty"`
	CheckinTime   string           `json:"checkin_time"`
	CheckoutTime  *string          `json:"checkout_time"`
	Status        Status           `json:"status"`
	HoursWorked   *decimal.Decimal `json:"hours_worked"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours"`
}

// ReportFilter narrows the attendance report. WorkerID is forced to the
// caller's own ID for worker-role callers.
type ReportFilter struct {
	WorkerID *string
}
