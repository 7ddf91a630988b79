package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_name, start_time, end_time
		FROM shifts
		WHERE id = $1
	`

	return scanShift(q.QueryRow(ctx, query, id))
}

// GetByWorkerID implements shift.ShiftRepository.
func (r *shiftRepository) GetByWorkerID(ctx context.Context, workerID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.shift_name, s.start_time, s.end_time
		FROM users u
		JOIN shifts s ON u.shift_id = s.id
		WHERE u.worker_id = $1
	`

	return scanShift(q.QueryRow(ctx, query, workerID))
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, shift_name, start_time, end_time
		FROM shifts
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// scanShift scans one shift row and parses its HH:MM:SS time columns. A
// malformed time column is a data-integrity error and is surfaced as such.
func scanShift(row pgx.Row) (shift.Shift, error) {
	var (
		sh       shift.Shift
		startRaw string
		endRaw   string
	)

	if err := row.Scan(&sh.ID, &sh.Name, &startRaw, &endRaw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to scan shift: %w", err)
	}

	var err error
	if sh.StartTime, err = shift.ParseTimeOfDay(startRaw); err != nil {
		return shift.Shift{}, fmt.Errorf("shift %d has corrupt start_time: %w", sh.ID, err)
	}
	if sh.EndTime, err = shift.ParseTimeOfDay(endRaw); err != nil {
		return shift.Shift{}, fmt.Errorf("shift %d has corrupt end_time: %w", sh.ID, err)
	}

	return sh, nil
}
