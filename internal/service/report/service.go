package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Salary is worked days at a flat daily wage plus overtime hours at a flat
// rate. Payroll pays per hour instead.
var (
	dailyWage           = decimal.NewFromInt(300)
	overtimeRate        = decimal.NewFromInt(10)
	payrollHourlyRate   = decimal.NewFromInt(100)
	payrollOvertimeRate = decimal.NewFromInt(50)
)

type ReportServiceImpl struct {
	report.ReportRepository

	loc *time.Location
	now func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		loc:              loc,
		now:              time.Now,
	}
}

// SalarySummary implements report.ReportService.
func (s *ReportServiceImpl) SalarySummary(ctx context.Context, filter report.SalaryFilter) ([]report.SalarySummary, error) {
	rows, err := s.ReportRepository.SalaryRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate salary rows: %w", err)
	}

	summaries := make([]report.SalarySummary, 0, len(rows))
	for _, row := range rows {
		base := decimal.NewFromInt(row.WorkedDays).Mul(dailyWage)
		overtime := row.TotalOvertime.Mul(overtimeRate).Round(2)

		summaries = append(summaries, report.SalarySummary{
			WorkerID:       row.WorkerID,
			Job:            row.Job,
			PresentDays:    row.PresentDays,
			WorkedDays:     row.WorkedDays,
			LateDays:       row.LateDays,
			EarlyLeaveDays: row.EarlyDays,
			TotalHours:     row.TotalHours,
			TotalOvertime:  row.TotalOvertime,
			BaseSalary:     base,
			OvertimeAmount: overtime,
			TotalSalary:    base.Add(overtime),
			Month:          filter.Month,
			Year:           filter.Year,
		})
	}
	return summaries, nil
}

// Payroll implements report.ReportService.
func (s *ReportServiceImpl) Payroll(ctx context.Context, workerID *string) (report.PayrollResponse, error) {
	now := s.now().In(s.loc)
	month, year := int(now.Month()), now.Year()

	rows, err := s.ReportRepository.PayrollRows(ctx, month, year, workerID)
	if err != nil {
		return report.PayrollResponse{}, fmt.Errorf("failed to aggregate payroll rows: %w", err)
	}

	data := make([]report.PayrollRow, 0, len(rows))
	for _, row := range rows {
		salary := row.TotalHours.Mul(payrollHourlyRate).
			Add(row.TotalOvertime.Mul(payrollOvertimeRate)).Round(2)

		data = append(data, report.PayrollRow{
			WorkerID:      row.WorkerID,
			Job:           row.Job,
			WorkedDays:    row.WorkedDays,
			TotalHours:    row.TotalHours,
			TotalOvertime: row.TotalOvertime,
			Salary:        salary,
		})
	}

	return report.PayrollResponse{
		Month: month,
		Year:  year,
		Data:  data,
	}, nil
}

// Analytics implements report.ReportService.
func (s *ReportServiceImpl) Analytics(ctx context.Context) (report.AnalyticsResponse, error) {
	var (
		totals  report.Totals
		buckets []report.DailyBucket
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.ReportRepository.Totals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		buckets, err = s.ReportRepository.DailyBuckets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.AnalyticsResponse{}, fmt.Errorf("failed to aggregate analytics: %w", err)
	}

	resp := report.AnalyticsResponse{
		TotalHours:     totals.TotalHours,
		TotalLate:      totals.TotalLate,
		TotalCheckins:  totals.TotalCheckins,
		Labels:         make([]string, 0, len(buckets)),
		HoursPerDay:    make([]decimal.Decimal, 0, len(buckets)),
		LatePerDay:     make([]int64, 0, len(buckets)),
		CheckinsPerDay: make([]int64, 0, len(buckets)),
	}
	for _, b := range buckets {
		resp.Labels = append(resp.Labels, b.WorkDate)
		resp.HoursPerDay = append(resp.HoursPerDay, b.Hours)
		resp.LatePerDay = append(resp.LatePerDay, b.Late)
		resp.CheckinsPerDay = append(resp.CheckinsPerDay, b.Checkins)
	}

	return resp, nil
}
