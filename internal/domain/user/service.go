package user

import "context"

// UserService defines business logic for user management. All operations
// are admin-only except ListWorkers.
type UserService interface {
	// Create registers a new user with a hashed password
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// List retrieves all users
	List(ctx context.Context) ([]UserResponse, error)

	// ListWorkers retrieves worker accounts only
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)

	// Delete removes a user by worker ID
	Delete(ctx context.Context, workerID string) error
}
