package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrWorkerIDExists        = errors.New("Worker ID already registered")
	ErrInvalidRole           = errors.New("Role must be admin or worker")
	ErrAdminAccessRequired   = errors.New("Admin access required")
	ErrInvalidPasswordLength = errors.New("Password must be at least 8 characters")
)
