package auth

import (
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	WorkerID string `json:"worker_id"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	WorkerID              string    `json:"worker_id"`
	Role                  user.Role `json:"role"`
	Job                   *string   `json:"job"`
	Email                 *string   `json:"email"`
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  int64     `json:"access_token_expires_at"`
	RefreshTokenExpiresAt int64     `json:"refresh_token_expires_at"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
