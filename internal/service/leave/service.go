package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	emailService email.Service
	adminInbox   string
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, emailService email.Service, adminInbox string) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		emailService:           emailService,
		adminInbox:             adminInbox,
	}
}

func callerClaims(ctx context.Context) (workerID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	workerID, _ = claims["worker_id"].(string)
	roleStr, _ := claims["role"].(string)
	if workerID == "" || roleStr == "" {
		return "", "", fmt.Errorf("worker_id or role claim is missing")
	}

	return workerID, user.Role(roleStr), nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	workerID, role, err := callerClaims(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if role != user.RoleWorker {
		return leave.LeaveRequestResponse{}, leave.ErrOnlyWorkersCanRequestLeave
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		ID:       uuid.NewString(),
		WorkerID: workerID,
		Reason:   req.Reason,
		FromDate: fromDate,
		ToDate:   toDate,
		Status:   leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	// Notification failure must not fail the submission
	if s.adminInbox != "" {
		subject := fmt.Sprintf("Leave Request from %s", workerID)
		body := fmt.Sprintf("Worker %s requested leave from %s to %s.\nReason: %s",
			workerID, req.FromDate, req.ToDate, req.Reason)
		if err := s.emailService.Send(s.adminInbox, subject, body); err != nil {
			slog.Error("failed to send leave notification", "error", err, "worker_id", workerID)
		}
	}

	return toResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if existing.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	existing.Status = req.Status
	return toResponse(existing), nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:        req.ID,
		WorkerID:  req.WorkerID,
		Reason:    req.Reason,
		FromDate:  req.FromDate.Format("2006-01-02"),
		ToDate:    req.ToDate.Format("2006-01-02"),
		Status:    req.Status,
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
	}
}
