package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/email"
)

// reminderGrace is how long after shift start the nudge goes out.
const reminderGrace = 30 * time.Minute

// ReminderJobs emails workers who have not checked in for today's work-date.
// The jobs only read attendance state; they never mutate it, so they cannot
// interact with the check-in/check-out path.
type ReminderJobs struct {
	userRepo user.UserRepository
	emailSvc email.Service
	loc      *time.Location
}

func NewReminderJobs(userRepo user.UserRepository, emailSvc email.Service, loc *time.Location) *ReminderJobs {
	return &ReminderJobs{
		userRepo: userRepo,
		emailSvc: emailSvc,
		loc:      loc,
	}
}

// RegisterJobs schedules one daily reminder per shift, shortly after the
// shift's start time.
func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler, shifts []shift.Shift) {
	for _, sh := range shifts {
		at := time.Date(0, 1, 1, sh.StartTime.Hour, sh.StartTime.Minute, 0, 0, j.loc).Add(reminderGrace)
		scheduler.AddDailyJob(
			fmt.Sprintf("checkin_reminder_%d", sh.ID),
			at.Hour(), at.Minute(),
			func(ctx context.Context) error {
				return j.SendShiftReminder(ctx, sh)
			},
		)
	}
}

// SendShiftReminder nudges every worker on sh with no attendance row for the
// work-date the shift's start belongs to.
func (j *ReminderJobs) SendShiftReminder(ctx context.Context, sh shift.Shift) error {
	now := time.Now().In(j.loc)
	w := shift.ResolveWindow(sh, now)

	workers, err := j.userRepo.ListWorkersWithoutAttendance(ctx, sh.ID, w.WorkDate)
	if err != nil {
		return fmt.Errorf("failed to list unattended workers: %w", err)
	}

	if len(workers) == 0 {
		slog.Info("Cron: all workers checked in", "shift", sh.Name)
		return nil
	}

	workDate := w.WorkDate.Format("2006-01-02")
	sent := 0
	for _, worker := range workers {
		if worker.Email == nil {
			continue
		}

		subject := fmt.Sprintf("Reminder: Please Check-In (%s)", sh.Name)
		body := fmt.Sprintf(
			"Hello %s, you haven't checked in yet for %s today (%s). Please check in.",
			worker.WorkerID, sh.Name, workDate,
		)

		if err := j.emailSvc.Send(*worker.Email, subject, body); err != nil {
			slog.Error("Cron: reminder email failed", "worker_id", worker.WorkerID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Cron: check-in reminders sent", "shift", sh.Name, "count", sent)
	return nil
}
