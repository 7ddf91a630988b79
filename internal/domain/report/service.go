package report

import "context"

// ReportService defines business logic for payroll and analytics.
type ReportService interface {
	// SalarySummary computes per-worker salary aggregates over a period
	SalarySummary(ctx context.Context, filter SalaryFilter) ([]SalarySummary, error)

	// Payroll computes the current month's payroll
	Payroll(ctx context.Context, workerID *string) (PayrollResponse, error)

	// Analytics returns the dashboard aggregates
	Analytics(ctx context.Context) (AnalyticsResponse, error)
}
