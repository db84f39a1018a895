package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ingestion run statuses.
const (
	RunStatusRunning = "running"
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// Ingestion run triggers.
const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)

// IngestionLog is one row in the persistent run log. It is created at run
// start and updated exactly once at run end; duration is computed from the
// persisted start timestamp so it survives process restarts mid-run.
type IngestionLog struct {
	ID           uuid.UUID  `db:"id"`
	JobName      string     `db:"job_name"`
	Trigger      string     `db:"trigger_source"`
	Status       string     `db:"status"`
	StartedAt    time.Time  `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
	DurationMS   *int64     `db:"duration_ms"`
	Details      *string    `db:"details"`
	ErrorMessage *string    `db:"error_message"`
}

// SeanceSyncStats summarizes one sittings/agenda ingestion run.
type SeanceSyncStats struct {
	TotalSeances  int `json:"totalSittings"`
	TotalItems    int `json:"totalItems"`
	DroppedOrgane int `json:"droppedOrgane"`
	Errors        int `json:"errors"`
}

// ScrutinSyncStats summarizes one roll-call vote ingestion run.
type ScrutinSyncStats struct {
	Scrutins     int `json:"scrutins"`
	ScrutinVotes int `json:"scrutinVotes"`
	Linked       int `json:"linked"`
	Tagged       int `json:"tagged"`
	Errors       int `json:"errors"`
}

// DeputeSyncStats summarizes one deputies/organes ingestion run.
type DeputeSyncStats struct {
	Deputes     int `json:"deputes"`
	Organes     int `json:"organes"`
	Memberships int `json:"memberships"`
	Errors      int `json:"errors"`
}

// DossierSyncStats summarizes one authoritative dossier ingestion run.
type DossierSyncStats struct {
	TotalDossiers int `json:"totalDossiers"`
	Errors        int `json:"errors"`
}

// TaggingStats summarizes one batch tagging run.
type TaggingStats struct {
	Scrutins    int `json:"scrutins"`
	Dossiers    int `json:"dossiers"`
	Assignments int `json:"assignments"`
	Errors      int `json:"errors"`
}
