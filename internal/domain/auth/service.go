package auth

import "context"

// AuthService defines business logic for authentication.
type AuthService interface {
	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)
}
