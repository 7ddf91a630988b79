package report

import "context"

// ReportRepository defines the aggregate queries behind payroll and analytics.
type ReportRepository interface {
	// SalaryRows aggregates attendance per worker, optionally filtered
	SalaryRows(ctx context.Context, filter SalaryFilter) ([]SalaryRow, error)

	// PayrollRows aggregates the given month, optionally for one worker
	PayrollRows(ctx context.Context, month, year int, workerID *string) ([]SalaryRow, error)

	// DailyBuckets returns per-work-date aggregates ordered by date ascending
	DailyBuckets(ctx context.Context) ([]DailyBucket, error)

	// Totals returns the all-time aggregates
	Totals(ctx context.Context) (Totals, error)
}
