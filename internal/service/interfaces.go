package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
)

// Source is the archive boundary: fetch + normalize, already decoded into
// canonical records.
type Source interface {
	FetchActeurs(ctx context.Context, legislature int) ([]opendata.Acteur, error)
	FetchOrganes(ctx context.Context, legislature int) ([]domain.Organe, error)
	FetchReunions(ctx context.Context, legislature int) ([]opendata.Reunion, error)
	FetchScrutins(ctx context.Context, legislature int) ([]opendata.Scrutin, error)
	FetchDossiers(ctx context.Context, legislature int) ([]opendata.DossierDoc, error)
}

type DeputeStore interface {
	Upsert(ctx context.Context, d *domain.Depute) error
}

type OrganeStore interface {
	Upsert(ctx context.Context, o *domain.Organe) error
	ListRefs(ctx context.Context) (map[string]bool, error)
	ReplaceMemberships(ctx context.Context, deputeRef string, memberships []domain.DeputeOrgane) error
}

type SeanceStore interface {
	Upsert(ctx context.Context, se *domain.Seance) error
	ReplaceAgendaItems(ctx context.Context, seanceRef string, items []domain.AgendaItem) error
	ReplaceAttendance(ctx context.Context, seanceRef string, rows []domain.SeanceAttendance) error
	UpsertSourceMetadata(ctx context.Context, meta *domain.SourceMetadata) error
	Exists(ctx context.Context, ref string) (bool, error)
	FindRefByDate(ctx context.Context, date time.Time) (*string, error)
}

type ScrutinStore interface {
	Upsert(ctx context.Context, sc *domain.Scrutin) error
	ReplaceVotes(ctx context.Context, scrutinRef string, ballots []domain.ScrutinVote) error
	GetExistingRefs(ctx context.Context, refs []string) (map[string]bool, error)
	ListRefsWithTitles(ctx context.Context) (map[string]string, error)
}

type DossierStore interface {
	Upsert(ctx context.Context, d *domain.Dossier) error
	UpsertHeuristic(ctx context.Context, d *domain.Dossier) error
	LinkScrutin(ctx context.Context, link *domain.DossierScrutin) error
	ListRefsWithTitles(ctx context.Context) (map[string]string, error)
}

type TagStore interface {
	ListCatalog(ctx context.Context) ([]domain.ThematicTag, error)
	ReplaceAssignments(ctx context.Context, kind domain.EntityKind, entityRef string, assignments []domain.TagAssignment) error
	DeleteAssignments(ctx context.Context, kind domain.EntityKind, entityRefs []string) error
	InsertAssignments(ctx context.Context, kind domain.EntityKind, assignments []domain.TagAssignment) error
	ListTaggedRefs(ctx context.Context, kind domain.EntityKind) (map[string]bool, error)
}

type RunLogStore interface {
	Start(ctx context.Context, jobName, trigger string) (*domain.IngestionLog, error)
	Finish(ctx context.Context, id uuid.UUID, status string, details, errorMessage *string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits ingestion events for downstream consumers (the
// push-notification service's input boundary). A nil Publisher is allowed.
type Publisher interface {
	Publish(ctx context.Context, scrutin *domain.Scrutin, isNew bool) error
	Close() error
}
