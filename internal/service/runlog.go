package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"assemblee_syncer/internal/domain"
)

// RunOptions carries the trigger parameters shared by every ingestion job.
type RunOptions struct {
	Trigger     string // domain.TriggerScheduled or domain.TriggerManual
	DryRun      bool
	Legislature int
	Date        *time.Time
	From        *time.Time
	To          *time.Time
	Force       bool
}

func (o RunOptions) trigger() string {
	if o.Trigger == "" {
		return domain.TriggerManual
	}
	return o.Trigger
}

func (o RunOptions) legislature(fallback int) int {
	if o.Legislature > 0 {
		return o.Legislature
	}
	return fallback
}

// runRecorder wraps the ingestion-log lifecycle around one job run: a running
// entry at start, a success entry with a result summary or an error entry
// with the failure message at the end.
type runRecorder struct {
	runLog  RunLogStore
	logger  *slog.Logger
	jobName string
	entry   *domain.IngestionLog
}

func startRun(ctx context.Context, runLog RunLogStore, logger *slog.Logger, jobName, trigger string) (*runRecorder, error) {
	entry, err := runLog.Start(ctx, jobName, trigger)
	if err != nil {
		return nil, err
	}
	logger.Info("run started", "job", jobName, "trigger", trigger, "run_id", entry.ID)
	return &runRecorder{runLog: runLog, logger: logger, jobName: jobName, entry: entry}, nil
}

// success records the run as successful with the stats payload as details.
func (r *runRecorder) success(ctx context.Context, stats any) {
	var details *string
	if payload, err := json.Marshal(stats); err == nil {
		s := string(payload)
		details = &s
	}
	if err := r.runLog.Finish(ctx, r.entry.ID, domain.RunStatusSuccess, details, nil); err != nil {
		r.logger.Error("failed to record run success", "job", r.jobName, "error", err)
	}
}

// fail records the run as errored with the failure message.
func (r *runRecorder) fail(ctx context.Context, runErr error) {
	msg := runErr.Error()
	if err := r.runLog.Finish(ctx, r.entry.ID, domain.RunStatusError, nil, &msg); err != nil {
		r.logger.Error("failed to record run error", "job", r.jobName, "error", err)
	}
}
