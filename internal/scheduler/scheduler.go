package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is one scheduled ingestion entry point.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler runs the registered ingestion jobs in order on a fixed interval.
// Jobs are independent: one failing does not stop the others.
type Scheduler struct {
	jobs     []Job
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(jobs []Job, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "jobs", len(s.jobs))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, job := range s.jobs {
		runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
		if err := job.Run(runCtx); err != nil {
			s.logger.Error("scheduled job failed", "job", job.Name, "error", err)
		}
		cancel()
	}
}
