package report

import (
	"context"
	"testing"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	salaryRows  []report.SalaryRow
	payrollRows []report.SalaryRow
	buckets     []report.DailyBucket
	totals      report.Totals

	payrollMonth int
	payrollYear  int
}

func (r *fakeReportRepo) SalaryRows(_ context.Context, _ report.SalaryFilter) ([]report.SalaryRow, error) {
	return r.salaryRows, nil
}

func (r *fakeReportRepo) PayrollRows(_ context.Context, month, year int, _ *string) ([]report.SalaryRow, error) {
	r.payrollMonth, r.payrollYear = month, year
	return r.payrollRows, nil
}

func (r *fakeReportRepo) DailyBuckets(_ context.Context) ([]report.DailyBucket, error) {
	return r.buckets, nil
}

func (r *fakeReportRepo) Totals(_ context.Context) (report.Totals, error) {
	return r.totals, nil
}

func TestSalarySummary(t *testing.T) {
	job := "Welder"
	repo := &fakeReportRepo{
		salaryRows: []report.SalaryRow{{
			WorkerID:      "W1",
			Job:           &job,
			PresentDays:   22,
			WorkedDays:    20,
			LateDays:      3,
			EarlyDays:     1,
			TotalHours:    decimal.RequireFromString("160.5"),
			TotalOvertime: decimal.RequireFromString("4.5"),
		}},
	}
	svc := NewReportService(repo, time.UTC)

	summaries, err := svc.SalarySummary(context.Background(), report.SalaryFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "6000", s.BaseSalary.String())
	assert.Equal(t, "45", s.OvertimeAmount.String())
	assert.Equal(t, "6045", s.TotalSalary.String())
	assert.Equal(t, int64(3), s.LateDays)
	assert.Equal(t, int64(1), s.EarlyLeaveDays)
}

func TestPayroll_UsesCurrentMonth(t *testing.T) {
	repo := &fakeReportRepo{
		payrollRows: []report.SalaryRow{{
			WorkerID:      "W1",
			WorkedDays:    10,
			TotalHours:    decimal.RequireFromString("80"),
			TotalOvertime: decimal.RequireFromString("2"),
		}},
	}
	svc := &ReportServiceImpl{
		ReportRepository: repo,
		loc:              time.UTC,
		now: func() time.Time {
			return time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
		},
	}

	resp, err := svc.Payroll(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Month)
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 7, repo.payrollMonth)
	assert.Equal(t, 2026, repo.payrollYear)
	require.Len(t, resp.Data, 1)

	// 80h at 100 plus 2h overtime at 50
	assert.Equal(t, "8100", resp.Data[0].Salary.String())
}

func TestAnalytics(t *testing.T) {
	repo := &fakeReportRepo{
		totals: report.Totals{
			TotalHours:    decimal.RequireFromString("24.5"),
			TotalLate:     2,
			TotalCheckins: 5,
		},
		buckets: []report.DailyBucket{
			{WorkDate: "2026-03-10", Hours: decimal.RequireFromString("16"), Late: 1, Checkins: 3},
			{WorkDate: "2026-03-11", Hours: decimal.RequireFromString("8.5"), Late: 1, Checkins: 2},
		},
	}
	svc := NewReportService(repo, time.UTC)

	resp, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "24.5", resp.TotalHours.String())
	assert.Equal(t, int64(5), resp.TotalCheckins)
	assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, resp.Labels)
	assert.Equal(t, []int64{1, 1}, resp.LatePerDay)
	assert.Equal(t, []int64{3, 2}, resp.CheckinsPerDay)
	require.Len(t, resp.HoursPerDay, 2)
	assert.Equal(t, "16", resp.HoursPerDay[0].String())
}
