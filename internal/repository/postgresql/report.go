package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

const salaryRowColumns = `
	a.worker_id,
	u.job,
	COUNT(a.id) AS present_days,
	COALESCE(SUM(CASE WHEN a.status IN ('On time', 'Late') THEN 1 ELSE 0 END), 0) AS worked_days,
	COALESCE(SUM(CASE WHEN a.status = 'Late' THEN 1 ELSE 0 END), 0) AS late_days,
	COALESCE(SUM(CASE WHEN a.status = 'Left early' THEN 1 ELSE 0 END), 0) AS early_leave_days,
	COALESCE(SUM(a.hours_worked), 0) AS total_hours,
	COALESCE(SUM(a.overtime_hours), 0) AS total_overtime
`

// SalaryRows implements report.ReportRepository.
func (r *reportRepository) SalaryRows(ctx context.Context, filter report.SalaryFilter) ([]report.SalaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN users u ON a.worker_id = u.worker_id
		WHERE 1=1
	`, salaryRowColumns)

	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		query += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	if filter.Month != nil && filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.work_date) = $%d AND EXTRACT(YEAR FROM a.work_date) = $%d", argIdx, argIdx+1)
		args = append(args, *filter.Month, *filter.Year)
	}

	query += " GROUP BY a.worker_id, u.job ORDER BY a.worker_id"

	return r.querySalaryRows(ctx, q, query, args...)
}

// PayrollRows implements report.ReportRepository.
func (r *reportRepository) PayrollRows(ctx context.Context, month, year int, workerID *string) ([]report.SalaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN users u ON a.worker_id = u.worker_id
		WHERE EXTRACT(MONTH FROM a.work_date) = $1 AND EXTRACT(YEAR FROM a.work_date) = $2
	`, salaryRowColumns)

	args := []interface{}{month, year}
	if workerID != nil {
		query += " AND a.worker_id = $3"
		args = append(args, *workerID)
	}

	query += " GROUP BY a.worker_id, u.job ORDER BY a.worker_id"

	return r.querySalaryRows(ctx, q, query, args...)
}

func (r *reportRepository) querySalaryRows(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]report.SalaryRow, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary rows: %w", err)
	}
	defer rows.Close()

	var result []report.SalaryRow
	for rows.Next() {
		var row report.SalaryRow
		if err := rows.Scan(
			&row.WorkerID, &row.Job, &row.PresentDays, &row.WorkedDays,
			&row.LateDays, &row.EarlyDays, &row.TotalHours, &row.TotalOvertime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary rows: %w", err)
	}

	return result, nil
}

// DailyBuckets implements report.ReportRepository.
func (r *reportRepository) DailyBuckets(ctx context.Context) ([]report.DailyBucket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(work_date, 'YYYY-MM-DD') AS work_date,
			   COALESCE(SUM(hours_worked), 0) AS hours,
			   COALESCE(SUM(CASE WHEN status = 'Late' THEN 1 ELSE 0 END), 0) AS late,
			   COUNT(id) AS checkins
		FROM attendance
		GROUP BY work_date
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily buckets: %w", err)
	}
	defer rows.Close()

	var buckets []report.DailyBucket
	for rows.Next() {
		var b report.DailyBucket
		if err := rows.Scan(&b.WorkDate, &b.Hours, &b.Late, &b.Checkins); err != nil {
			return nil, fmt.Errorf("failed to scan daily bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily buckets: %w", err)
	}

	return buckets, nil
}

// Totals implements report.ReportRepository.
func (r *reportRepository) Totals(ctx context.Context) (report.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0) AS total_hours,
			   COALESCE(SUM(CASE WHEN status = 'Late' THEN 1 ELSE 0 END), 0) AS total_late,
			   COUNT(id) AS total_checkins
		FROM attendance
	`

	var t report.Totals
	if err := q.QueryRow(ctx, query).Scan(&t.TotalHours, &t.TotalLate, &t.TotalCheckins); err != nil {
		return report.Totals{}, fmt.Errorf("failed to query totals: %w", err)
	}

	return t, nil
}
