package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"assemblee_syncer/internal/domain"
)

type SeanceStore struct {
	db *sqlx.DB
}

func NewSeanceStore(db *sqlx.DB) *SeanceStore {
	return &SeanceStore{db: db}
}

func (s *SeanceStore) Upsert(ctx context.Context, se *domain.Seance) error {
	query := `
		INSERT INTO seances (
			ref, date, start_time, end_time, type, title, description,
			location, organe_ref
		) VALUES (
			:ref, :date, :start_time, :end_time, :type, :title, :description,
			:location, :organe_ref
		)
		ON CONFLICT (ref) DO UPDATE SET
			date = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			type = EXCLUDED.type,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			organe_ref = EXCLUDED.organe_ref,
			updated_at = now()`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, se)
	return err
}

// ReplaceAgendaItems replaces a sitting's agenda wholesale; the source
// provides the complete agenda per sitting on every sync.
func (s *SeanceStore) ReplaceAgendaItems(ctx context.Context, seanceRef string, items []domain.AgendaItem) error {
	ex := GetExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		"DELETE FROM agenda_items WHERE seance_ref = $1", seanceRef,
	); err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	return forEachChunk(len(items), insertChunkSize, func(lo, hi int) error {
		_, err := sqlx.NamedExecContext(ctx, ex, `
			INSERT INTO agenda_items (seance_ref, scheduled_at, title, category, ref_code, ref_url)
			VALUES (:seance_ref, :scheduled_at, :title, :category, :ref_code, :ref_url)`,
			items[lo:hi],
		)
		return err
	})
}

// ReplaceAttendance replaces a sitting's attendance rows wholesale, like the
// agenda: the source ships the full participant list per sitting.
func (s *SeanceStore) ReplaceAttendance(ctx context.Context, seanceRef string, rows []domain.SeanceAttendance) error {
	ex := GetExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		"DELETE FROM seance_attendance WHERE seance_ref = $1", seanceRef,
	); err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	return forEachChunk(len(rows), insertChunkSize, func(lo, hi int) error {
		_, err := sqlx.NamedExecContext(ctx, ex, `
			INSERT INTO seance_attendance (seance_ref, depute_ref, presence)
			VALUES (:seance_ref, :depute_ref, :presence)`,
			rows[lo:hi],
		)
		return err
	})
}

// UpsertSourceMetadata overwrites the single metadata row per sitting.
func (s *SeanceStore) UpsertSourceMetadata(ctx context.Context, meta *domain.SourceMetadata) error {
	query := `
		INSERT INTO source_metadata (seance_ref, source_url, last_synced_at, checksum)
		VALUES (:seance_ref, :source_url, :last_synced_at, :checksum)
		ON CONFLICT (seance_ref) DO UPDATE SET
			source_url = EXCLUDED.source_url,
			last_synced_at = EXCLUDED.last_synced_at,
			checksum = EXCLUDED.checksum`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, meta)
	return err
}

// Exists reports whether a sitting with the external ref is stored.
func (s *SeanceStore) Exists(ctx context.Context, ref string) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, "SELECT 1 FROM seances WHERE ref = $1", ref)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindRefByDate resolves a plenary sitting ref for a given day, used when a
// vote carries no sitting reference.
func (s *SeanceStore) FindRefByDate(ctx context.Context, date time.Time) (*string, error) {
	var ref string
	err := s.db.GetContext(ctx, &ref, `
		SELECT ref FROM seances
		WHERE date = $1 AND type = $2
		ORDER BY start_time NULLS LAST
		LIMIT 1`,
		date, domain.SeanceTypePlenary,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *SeanceStore) GetByRef(ctx context.Context, ref string) (*domain.Seance, error) {
	var se domain.Seance
	query := `
		SELECT id, ref, date, start_time, end_time, type, title, description,
		       location, organe_ref, created_at, updated_at
		FROM seances
		WHERE ref = $1`

	err := s.db.GetContext(ctx, &se, query, ref)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &se, nil
}
