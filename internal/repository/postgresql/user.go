package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (worker_id, password_hash, role, job, email, shift_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.WorkerID, u.PasswordHash, u.Role, u.Job, u.Email, u.ShiftID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrWorkerIDExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByWorkerID implements user.UserRepository.
func (r *userRepository) GetByWorkerID(ctx context.Context, workerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id, password_hash, role, job, email, shift_id, created_at, updated_at
		FROM users
		WHERE worker_id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, workerID).Scan(
		&u.WorkerID, &u.PasswordHash, &u.Role, &u.Job, &u.Email, &u.ShiftID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by worker ID: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `
		SELECT worker_id, password_hash, role, job, email, shift_id, created_at, updated_at
		FROM users
		ORDER BY worker_id ASC
	`)
}

// ListWorkers implements user.UserRepository.
func (r *userRepository) ListWorkers(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `
		SELECT worker_id, password_hash, role, job, email, shift_id, created_at, updated_at
		FROM users
		WHERE role = 'worker'
		ORDER BY worker_id ASC
	`)
}

// ListWorkersWithoutAttendance implements user.UserRepository.
func (r *userRepository) ListWorkersWithoutAttendance(ctx context.Context, shiftID int64, workDate time.Time) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.worker_id, u.password_hash, u.role, u.job, u.email, u.shift_id, u.created_at, u.updated_at
		FROM users u
		WHERE u.role = 'worker'
		  AND u.shift_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM attendance a
			WHERE a.worker_id = u.worker_id AND a.work_date = $2
		  )
		ORDER BY u.worker_id ASC
	`

	rows, err := q.Query(ctx, query, shiftID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers without attendance: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE worker_id = $1`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) list(ctx context.Context, query string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.WorkerID, &u.PasswordHash, &u.Role, &u.Job, &u.Email, &u.ShiftID,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
