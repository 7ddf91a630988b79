package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Check-in window around shift start, in minutes.
const (
	earliestCheckInMinutes = -60
	latestCheckInMinutes   = 300
	lateAfterMinutes       = 15
)

const clockFormat = "03:04 PM"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	shift.ShiftRepository

	// loc is the single wall-clock zone all shift arithmetic runs in;
	// now is injectable for tests.
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		ShiftRepository:      shiftRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

func callerClaims(ctx context.Context) (workerID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return "", "", fmt.Errorf("worker_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return workerID, user.Role(roleStr), nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	workerID, role, err := callerClaims(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if role != user.RoleWorker {
		return attendance.CheckInResponse{}, attendance.ErrOnlyWorkersCanCheckIn
	}

	now := s.now().In(s.loc)

	// An open session means a prior check-in was never closed; reject before
	// any shift arithmetic.
	_, err = s.AttendanceRepository.GetOpenSession(ctx, workerID)
	if err == nil {
		return attendance.CheckInResponse{}, attendance.ErrActiveSessionExists
	}
	if !errors.Is(err, attendance.ErrNoActiveCheckIn) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}

	sh, err := s.ShiftRepository.GetByWorkerID(ctx, workerID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return attendance.CheckInResponse{}, attendance.ErrShiftNotAssigned
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get shift for worker: %w", err)
	}

	w := shift.ResolveWindow(sh, now)

	// A closed session for the same shift-day also blocks re-entry; the open
	// session check above cannot catch that one.
	existing, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, workerID, w.WorkDate)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check attendance for work date: %w", err)
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedInToday
	}

	diffMinutes := int(math.Round(now.Sub(w.Start).Minutes()))

	if diffMinutes < earliestCheckInMinutes {
		return attendance.CheckInResponse{}, &attendance.TooEarlyError{
			ShiftName: sh.Name,
			StartsAt:  sh.StartTime.String(),
		}
	}

	if diffMinutes > latestCheckInMinutes {
		return attendance.CheckInResponse{}, attendance.ErrTooLateToCheckIn
	}

	status := attendance.StatusOnTime
	if diffMinutes > lateAfterMinutes {
		status = attendance.StatusLate
	}

	record := attendance.Attendance{
		WorkerID:    workerID,
		CheckinTime: now,
		WorkDate:    w.WorkDate,
		ShiftID:     sh.ID,
		Status:      status,
	}

	if _, err := s.AttendanceRepository.Create(ctx, record); err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Status:      status,
		WorkDate:    w.WorkDate.Format("2006-01-02"),
		ShiftName:   sh.Name,
		CheckinTime: now.Format(clockFormat),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	workerID, role, err := callerClaims(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if role != user.RoleWorker {
		return attendance.CheckOutResponse{}, attendance.ErrOnlyWorkersCanCheckOut
	}

	att, err := s.AttendanceRepository.GetOpenSession(ctx, workerID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveCheckIn) {
			return attendance.CheckOutResponse{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if att.Shift == nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("attendance %d has no shift joined", att.ID)
	}

	now := s.now().In(s.loc)
	checkin := att.CheckinTime.In(s.loc)

	// Shift end is anchored to the stored check-in date, not the current
	// clock, so an overnight checkout closes against the right instance.
	end := shift.ResolveEnd(*att.Shift, checkin)

	hoursWorked := decimal.NewFromFloat(now.Sub(checkin).Hours()).Round(2)
	overtime := decimal.Zero
	status := att.Status

	if now.After(end) {
		overtime = decimal.NewFromFloat(now.Sub(end).Hours()).Round(2)
	} else if now.Before(end) {
		status = attendance.StatusLeftEarly
	}

	if err := s.AttendanceRepository.Close(ctx, att.ID, now, hoursWorked, overtime, status); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		HoursWorked:   hoursWorked,
		OvertimeHours: overtime,
		Status:        status,
		CheckinTime:   checkin.Format(clockFormat),
		CheckoutTime:  now.Format(clockFormat),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	workerID, _, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return s.mapRecords(records), nil
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) ([]attendance.AttendanceResponse, error) {
	workerID, role, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	// Workers only ever see their own rows
	if role == user.RoleWorker {
		filter.WorkerID = &workerID
	}

	var records []attendance.Attendance
	if filter.WorkerID != nil {
		records, err = s.AttendanceRepository.ListByWorker(ctx, *filter.WorkerID)
	} else {
		records, err = s.AttendanceRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.mapRecords(records), nil
}

func (s *AttendanceServiceImpl) mapRecords(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapRecord(att))
	}
	return responses
}

func (s *AttendanceServiceImpl) mapRecord(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		WorkerID:      att.WorkerID,
		WorkDate:      att.WorkDate.Format("2006-01-02"),
		Job:           att.Job,
		CheckinTime:   att.CheckinTime.In(s.loc).Format("2006-01-02 15:04:05"),
		Status:        att.Status,
		HoursWorked:   att.HoursWorked,
		OvertimeHours: att.OvertimeHours,
	}

	if att.Shift != nil {
		resp.ShiftName = &att.Shift.Name
	}

	if att.CheckoutTime != nil {
		out := att.CheckoutTime.In(s.loc).Format("2006-01-02 15:04:05")
		resp.CheckoutTime = &out
	}

	return resp
}
