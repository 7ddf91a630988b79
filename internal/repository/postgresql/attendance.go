package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
//
// The read-then-write duplicate checks in the service are the fast path; the
// schema's unique constraints are the backstop when two check-ins race, so a
// lost race still maps to the same rejection the read would have produced.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (worker_id, checkin_time, work_date, shift_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.WorkerID, att.CheckinTime, att.WorkDate, att.ShiftID, att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "attendance_open_session_idx" {
				return attendance.Attendance{}, attendance.ErrActiveSessionExists
			}
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedInToday
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, workerID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.checkin_time, a.checkout_time, a.work_date,
			   a.shift_id, a.status, a.hours_worked, a.overtime_hours,
			   a.created_at, a.updated_at,
			   s.id, s.shift_name, s.start_time, s.end_time
		FROM attendance a
		JOIN shifts s ON a.shift_id = s.id
		WHERE a.worker_id = $1
		  AND a.checkout_time IS NULL
		ORDER BY a.id DESC
		LIMIT 1
	`

	var (
		att      attendance.Attendance
		sh       shift.Shift
		startRaw string
		endRaw   string
	)
	err := q.QueryRow(ctx, query, workerID).Scan(
		&att.ID, &att.WorkerID, &att.CheckinTime, &att.CheckoutTime, &att.WorkDate,
		&att.ShiftID, &att.Status, &att.HoursWorked, &att.OvertimeHours,
		&att.CreatedAt, &att.UpdatedAt,
		&sh.ID, &sh.Name, &startRaw, &endRaw,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if sh.StartTime, err = shift.ParseTimeOfDay(startRaw); err != nil {
		return attendance.Attendance{}, fmt.Errorf("shift %d has corrupt start_time: %w", sh.ID, err)
	}
	if sh.EndTime, err = shift.ParseTimeOfDay(endRaw); err != nil {
		return attendance.Attendance{}, fmt.Errorf("shift %d has corrupt end_time: %w", sh.ID, err)
	}
	att.Shift = &sh

	return att, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, checkin_time, checkout_time, work_date,
			   shift_id, status, hours_worked, overtime_hours,
			   created_at, updated_at
		FROM attendance
		WHERE worker_id = $1
		  AND work_date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, workerID, workDate).Scan(
		&att.ID, &att.WorkerID, &att.CheckinTime, &att.CheckoutTime, &att.WorkDate,
		&att.ShiftID, &att.Status, &att.HoursWorked, &att.OvertimeHours,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by worker and date: %w", err)
	}

	return &att, nil
}

// Close implements attendance.AttendanceRepository.
func (r *attendanceRepository) Close(ctx context.Context, id int64, checkout time.Time, hours, overtime decimal.Decimal, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET checkout_time = $2, hours_worked = $3, overtime_hours = $4, status = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, checkout, hours, overtime, status)
	if err != nil {
		return fmt.Errorf("failed to close attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]attendance.Attendance, error) {
	return r.listWhere(ctx, `WHERE a.worker_id = $1`, workerID)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return r.listWhere(ctx, ``)
}

func (r *attendanceRepository) listWhere(ctx context.Context, where string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT a.id, a.worker_id, a.checkin_time, a.checkout_time, a.work_date,
			   a.shift_id, a.status, a.hours_worked, a.overtime_hours,
			   a.created_at, a.updated_at,
			   s.shift_name, u.job
		FROM attendance a
		JOIN shifts s ON a.shift_id = s.id
		JOIN users u ON a.worker_id = u.worker_id
		%s
		ORDER BY a.work_date DESC, a.checkin_time ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var (
			att       attendance.Attendance
			shiftName string
		)
		if err := rows.Scan(
			&att.ID, &att.WorkerID, &att.CheckinTime, &att.CheckoutTime, &att.WorkDate,
			&att.ShiftID, &att.Status, &att.HoursWorked, &att.OvertimeHours,
			&att.CreatedAt, &att.UpdatedAt,
			&shiftName, &att.Job,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.Shift = &shift.Shift{ID: att.ShiftID, Name: shiftName}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}
