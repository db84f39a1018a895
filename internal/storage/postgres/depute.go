package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"assemblee_syncer/internal/domain"
)

type DeputeStore struct {
	db *sqlx.DB
}

func NewDeputeStore(db *sqlx.DB) *DeputeStore {
	return &DeputeStore{db: db}
}

func (s *DeputeStore) Upsert(ctx context.Context, d *domain.Depute) error {
	query := `
		INSERT INTO deputes (
			ref, first_name, last_name, birth_date, birth_place, profession,
			sex, groupe_label, circonscription_label, circonscription_id,
			departement, mandate_start, mandate_end, legislature
		) VALUES (
			:ref, :first_name, :last_name, :birth_date, :birth_place, :profession,
			:sex, :groupe_label, :circonscription_label, :circonscription_id,
			:departement, :mandate_start, :mandate_end, :legislature
		)
		ON CONFLICT (ref) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			birth_date = EXCLUDED.birth_date,
			birth_place = EXCLUDED.birth_place,
			profession = EXCLUDED.profession,
			sex = EXCLUDED.sex,
			groupe_label = EXCLUDED.groupe_label,
			circonscription_label = EXCLUDED.circonscription_label,
			circonscription_id = EXCLUDED.circonscription_id,
			departement = EXCLUDED.departement,
			mandate_start = EXCLUDED.mandate_start,
			mandate_end = EXCLUDED.mandate_end,
			legislature = EXCLUDED.legislature,
			updated_at = now()`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, d)
	return err
}

func (s *DeputeStore) GetByRef(ctx context.Context, ref string) (*domain.Depute, error) {
	var d domain.Depute
	query := `
		SELECT id, ref, first_name, last_name, birth_date, birth_place,
		       profession, sex, groupe_label, circonscription_label,
		       circonscription_id, departement, mandate_start, mandate_end,
		       legislature, created_at, updated_at
		FROM deputes
		WHERE ref = $1`

	err := s.db.GetContext(ctx, &d, query, ref)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DeputeStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT count(*) FROM deputes")
	return n, err
}
