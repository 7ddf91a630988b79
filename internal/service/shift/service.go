package shift

import (
	"context"
	"fmt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
	}
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toResponse(sh))
	}
	return responses, nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id int64) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(sh), nil
}

func toResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		StartTime: sh.StartTime.String(),
		EndTime:   sh.EndTime.String(),
		Overnight: sh.IsOvernight(),
	}
}
