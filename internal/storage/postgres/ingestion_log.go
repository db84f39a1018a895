package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"assemblee_syncer/internal/domain"
)

type IngestionLogStore struct {
	db *sqlx.DB
}

func NewIngestionLogStore(db *sqlx.DB) *IngestionLogStore {
	return &IngestionLogStore{db: db}
}

// Start inserts the running entry for a job run and returns it.
func (s *IngestionLogStore) Start(ctx context.Context, jobName, trigger string) (*domain.IngestionLog, error) {
	entry := &domain.IngestionLog{
		ID:        uuid.New(),
		JobName:   jobName,
		Trigger:   trigger,
		Status:    domain.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingestion_logs (id, job_name, trigger_source, status, started_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.JobName, entry.Trigger, entry.Status, entry.StartedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Finish mutates the run entry exactly once. Duration is computed in the
// database from the persisted start timestamp, so it survives a process
// restart mid-run.
func (s *IngestionLogStore) Finish(ctx context.Context, id uuid.UUID, status string, details, errorMessage *string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE ingestion_logs SET
			status = $2,
			finished_at = now(),
			duration_ms = (EXTRACT(EPOCH FROM (now() - started_at)) * 1000)::bigint,
			details = $3,
			error_message = $4
		WHERE id = $1`,
		id, status, details, errorMessage,
	)
	return err
}

func (s *IngestionLogStore) Get(ctx context.Context, id uuid.UUID) (*domain.IngestionLog, error) {
	var entry domain.IngestionLog
	err := s.db.GetContext(ctx, &entry, `
		SELECT id, job_name, trigger_source, status, started_at, finished_at,
		       duration_ms, details, error_message
		FROM ingestion_logs
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
