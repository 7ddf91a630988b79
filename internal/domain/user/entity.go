package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Manages users, leave requests, reports
	RoleWorker Role = "worker" // Checks in/out against an assigned shift
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleWorker
}

type User struct {
	WorkerID     string
	PasswordHash string
	Role         Role
	Job          *string
	Email        *string
	ShiftID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsWorker checks if user is a shift worker
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}
