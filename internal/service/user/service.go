package user

import (
	"context"
	"fmt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		WorkerID:     req.WorkerID,
		PasswordHash: string(hash),
		Role:         req.Role,
		Job:          req.Job,
		Email:        req.Email,
		ShiftID:      req.ShiftID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// ListWorkers implements user.UserService.
func (s *UserServiceImpl) ListWorkers(ctx context.Context) ([]user.WorkerResponse, error) {
	workers, err := s.UserRepository.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]user.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, user.WorkerResponse{
			WorkerID: w.WorkerID,
			Job:      w.Job,
		})
	}
	return responses, nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, workerID string) error {
	return s.UserRepository.Delete(ctx, workerID)
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		WorkerID: u.WorkerID,
		Role:     u.Role,
		Job:      u.Job,
		Email:    u.Email,
		ShiftID:  u.ShiftID,
	}
}
