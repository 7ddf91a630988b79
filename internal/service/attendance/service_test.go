package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZone = time.FixedZone("IST", 5*3600+30*60)

var (
	dayShift = shift.Shift{
		ID:        1,
		Name:      "Shift 1",
		StartTime: shift.TimeOfDay{Hour: 9},
		EndTime:   shift.TimeOfDay{Hour: 17},
	}
	nightShift = shift.Shift{
		ID:        2,
		Name:      "Shift 2",
		StartTime: shift.TimeOfDay{Hour: 22},
		EndTime:   shift.TimeOfDay{Hour: 6},
	}
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int64
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range r.records {
		if existing.WorkerID == att.WorkerID && existing.WorkDate.Equal(att.WorkDate) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedInToday
		}
		if existing.WorkerID == att.WorkerID && existing.CheckoutTime == nil {
			return attendance.Attendance{}, attendance.ErrActiveSessionExists
		}
	}
	r.nextID++
	att.ID = r.nextID
	r.records = append(r.records, att)
	return att, nil
}

func (r *fakeAttendanceRepo) GetOpenSession(_ context.Context, workerID string) (attendance.Attendance, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].WorkerID == workerID && r.records[i].CheckoutTime == nil {
			return r.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoActiveCheckIn
}

func (r *fakeAttendanceRepo) GetByWorkerAndDate(_ context.Context, workerID string, workDate time.Time) (*attendance.Attendance, error) {
	for i := range r.records {
		if r.records[i].WorkerID == workerID && r.records[i].WorkDate.Equal(workDate) {
			return &r.records[i], nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Close(_ context.Context, id int64, checkout time.Time, hours, overtime decimal.Decimal, status attendance.Status) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].CheckoutTime = &checkout
			r.records[i].HoursWorked = &hours
			r.records[i].OvertimeHours = &overtime
			r.records[i].Status = status
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) ListByWorker(_ context.Context, workerID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.WorkerID == workerID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Attendance, error) {
	return r.records, nil
}

type fakeShiftRepo struct {
	byWorker map[string]shift.Shift
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id int64) (shift.Shift, error) {
	for _, sh := range r.byWorker {
		if sh.ID == id {
			return sh, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) GetByWorkerID(_ context.Context, workerID string) (shift.Shift, error) {
	sh, ok := r.byWorker[workerID]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (r *fakeShiftRepo) List(_ context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, sh := range r.byWorker {
		out = append(out, sh)
	}
	return out, nil
}

func authCtx(t *testing.T, workerID, role string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"worker_id": workerID,
		"role":      role,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(attRepo *fakeAttendanceRepo, shiftRepo *fakeShiftRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		ShiftRepository:      shiftRepo,
		loc:                  testZone,
		now:                  func() time.Time { return now },
	}
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, testZone)
}

func TestCheckIn_OnTime(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 10))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOnTime, resp.Status)
	assert.Equal(t, "2026-03-10", resp.WorkDate)
	assert.Equal(t, "Shift 1", resp.ShiftName)
	assert.Equal(t, "09:10 AM", resp.CheckinTime)
	require.Len(t, attRepo.records, 1)
	assert.Equal(t, int64(1), attRepo.records[0].ShiftID)
}

func TestCheckIn_Late(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 20))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestCheckIn_ExactlyFifteenLateIsOnTime(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 15))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
}

func TestCheckIn_TooEarly(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 7, 50))

	_, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.Error(t, err)

	var tooEarly *attendance.TooEarlyError
	require.ErrorAs(t, err, &tooEarly)
	assert.Equal(t, "Shift 1", tooEarly.ShiftName)
	assert.Equal(t, "09:00:00", tooEarly.StartsAt)
	assert.Empty(t, attRepo.records)
}

func TestCheckIn_OneHourEarlyIsAllowed(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 8, 0))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
}

func TestCheckIn_TooLate(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 14, 1))

	_, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	assert.ErrorIs(t, err, attendance.ErrTooLateToCheckIn)
}

func TestCheckIn_AdminRejected(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"A1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))

	_, err := svc.CheckIn(authCtx(t, "A1", "admin"))
	assert.ErrorIs(t, err, attendance.ErrOnlyWorkersCanCheckIn)
}

func TestCheckIn_NoShiftAssigned(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))

	_, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	assert.ErrorIs(t, err, attendance.ErrShiftNotAssigned)
}

func TestCheckIn_ActiveSessionRejected(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": nightShift}}

	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 22, 5))
	_, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	// Next evening, previous session still open
	svc = newTestService(attRepo, shiftRepo, at(2026, time.March, 11, 22, 5))
	_, err = svc.CheckIn(authCtx(t, "W1", "worker"))
	assert.ErrorIs(t, err, attendance.ErrActiveSessionExists)
}

func TestCheckIn_SameWorkDateRejected(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}

	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))
	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	attRepo.records[0].Shift = &dayShift

	// Close the session, then try again the same day
	outSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 11, 0))
	_, err = outSvc.CheckOut(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	svc = newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 13, 0))
	_, err = svc.CheckIn(authCtx(t, "W1", "worker"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedInToday)
	assert.Equal(t, "2026-03-10", resp.WorkDate)
}

func TestCheckIn_OvernightBeforeMidnight(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": nightShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 23, 50))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, "2026-03-10", resp.WorkDate)
}

func TestCheckIn_OvernightAfterMidnightKeepsPriorWorkDate(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": nightShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 11, 1, 30))

	resp, err := svc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	// 3.5h after the 22:00 start on the 10th: inside the window, late
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, "2026-03-10", resp.WorkDate)
}

func TestCheckOut_WithOvertime(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}

	inSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))
	_, err := inSvc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	attRepo.records[0].Shift = &dayShift

	outSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 18, 30))
	resp, err := outSvc.CheckOut(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	assert.Equal(t, "9.5", resp.HoursWorked.String())
	assert.Equal(t, "1.5", resp.OvertimeHours.String())
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
	assert.Equal(t, "09:00 AM", resp.CheckinTime)
	assert.Equal(t, "06:30 PM", resp.CheckoutTime)
	require.NotNil(t, attRepo.records[0].CheckoutTime)
}

func TestCheckOut_BeforeShiftEndIsLeftEarly(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}

	inSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))
	_, err := inSvc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	attRepo.records[0].Shift = &dayShift

	outSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 16, 0))
	resp, err := outSvc.CheckOut(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLeftEarly, resp.Status)
	assert.Equal(t, "7", resp.HoursWorked.String())
	assert.True(t, resp.OvertimeHours.IsZero())
}

func TestCheckOut_OvernightAfterMidnight(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": nightShift}}

	inSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 22, 0))
	_, err := inSvc.CheckIn(authCtx(t, "W1", "worker"))
	require.NoError(t, err)
	attRepo.records[0].Shift = &nightShift

	// 06:30 next morning: 30 minutes past the 06:00 end
	outSvc := newTestService(attRepo, shiftRepo, at(2026, time.March, 11, 6, 30))
	resp, err := outSvc.CheckOut(authCtx(t, "W1", "worker"))
	require.NoError(t, err)

	assert.Equal(t, "8.5", resp.HoursWorked.String())
	assert.Equal(t, "0.5", resp.OvertimeHours.String())
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
}

func TestCheckOut_NoActiveSession(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{"W1": dayShift}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 17, 0))

	_, err := svc.CheckOut(authCtx(t, "W1", "worker"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

func TestCheckOut_AdminRejected(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 17, 0))

	_, err := svc.CheckOut(authCtx(t, "A1", "admin"))
	assert.ErrorIs(t, err, attendance.ErrOnlyWorkersCanCheckOut)
}

func TestReport_WorkerSeesOnlyOwnRows(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{
		"W1": dayShift,
		"W2": dayShift,
	}}

	for _, id := range []string{"W1", "W2"} {
		svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))
		_, err := svc.CheckIn(authCtx(t, id, "worker"))
		require.NoError(t, err)
	}

	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 12, 0))

	rows, err := svc.Report(authCtx(t, "W1", "worker"), attendance.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "W1", rows[0].WorkerID)

	rows, err = svc.Report(authCtx(t, "A1", "admin"), attendance.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCheckIn_NoClaims(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	shiftRepo := &fakeShiftRepo{byWorker: map[string]shift.Shift{}}
	svc := newTestService(attRepo, shiftRepo, at(2026, time.March, 10, 9, 0))

	_, err := svc.CheckIn(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, attendance.ErrOnlyWorkersCanCheckIn))
}
