package report

import "github.com/shopspring/decimal"

// ========================================
// PAYROLL / ANALYTICS DTOs
// ========================================

// SalaryRow is the per-worker aggregate the store computes over a period.
type SalaryRow struct {
	WorkerID      string
	Job           *string
	PresentDays   int64
	WorkedDays    int64
	LateDays      int64
	EarlyDays     int64
	TotalHours    decimal.Decimal
	TotalOvertime decimal.Decimal
}

type SalarySummary struct {
	WorkerID       string          `json:"worker_id"`
	Job            *string         `json:"job"`
	PresentDays    int64           `json:"present_days"`
	WorkedDays     int64           `json:"worked_days"`
	LateDays       int64           `json:"late_days"`
	EarlyLeaveDays int64           `json:"early_leave_days"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalOvertime  decimal.Decimal `json:"total_overtime"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	OvertimeAmount decimal.Decimal `json:"overtime_amount"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	Month          *int            `json:"month"`
	Year           *int            `json:"year"`
}

type SalaryFilter struct {
	WorkerID *string
	Month    *int
	Year     *int
}

type PayrollRow struct {
	WorkerID      string          `json:"worker_id"`
	Job           *string         `json:"job"`
	WorkedDays    int64           `json:"worked_days"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalOvertime decimal.Decimal `json:"total_overtime"`
	Salary        decimal.Decimal `json:"salary"`
}

type PayrollResponse struct {
	Month int          `json:"month"`
	Year  int          `json:"year"`
	Data  []PayrollRow `json:"data"`
}

// DailyBucket is one work-date's worth of aggregates for the charts.
type DailyBucket struct {
	WorkDate string
	Hours    decimal.Decimal
	Late     int64
	Checkins int64
}

type Totals struct {
	TotalHours    decimal.Decimal
	TotalLate     int64
	TotalCheckins int64
}

type AnalyticsResponse struct {
	TotalHours     decimal.Decimal   `json:"total_hours"`
	TotalLate      int64             `json:"total_late"`
	TotalCheckins  int64             `json:"total_checkins"`
	Labels         []string          `json:"labels"`
	HoursPerDay    []decimal.Decimal `json:"hours_per_day"`
	LatePerDay     []int64           `json:"late_per_day"`
	CheckinsPerDay []int64           `json:"checkins_per_day"`
}
