package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job fires once a day at a fixed wall-clock time in the scheduler's zone.
type Job struct {
	Name   string
	Hour   int
	Minute int
	Fn     func(ctx context.Context) error
}

// Scheduler runs daily jobs against a single wall-clock zone.
type Scheduler struct {
	jobs   []Job
	loc    *time.Location
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a scheduler whose job times are interpreted in loc.
func NewScheduler(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		loc:    loc,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDailyJob registers fn to run every day at hour:minute.
func (s *Scheduler) AddDailyJob(name string, hour, minute int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Hour: hour, Minute: minute, Fn: fn})
	slog.Info("Cron job registered", "name", name, "at", time.Date(0, 1, 1, hour, minute, 0, 0, s.loc).Format("15:04"))
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// next returns the upcoming hour:minute occurrence after now.
func (s *Scheduler) next(job Job, now time.Time) time.Time {
	local := now.In(s.loc)
	at := time.Date(local.Year(), local.Month(), local.Day(), job.Hour, job.Minute, 0, 0, s.loc)
	if !at.After(local) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	for {
		wait := time.Until(s.next(job, time.Now()))
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
