package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"assemblee_syncer/internal/domain"
)

type DossierStore struct {
	db *sqlx.DB
}

func NewDossierStore(db *sqlx.DB) *DossierStore {
	return &DossierStore{db: db}
}

// Upsert writes an authoritative dossier record, overwriting any previous
// state (including one created by the vote-title heuristic under the same
// ref).
func (s *DossierStore) Upsert(ctx context.Context, d *domain.Dossier) error {
	query := `
		INSERT INTO dossiers (ref, title, short_title, type, origin, url)
		VALUES (:ref, :title, :short_title, :type, :origin, :url)
		ON CONFLICT (ref) DO UPDATE SET
			title = EXCLUDED.title,
			short_title = EXCLUDED.short_title,
			type = EXCLUDED.type,
			origin = EXCLUDED.origin,
			url = EXCLUDED.url,
			updated_at = now()`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, d)
	return err
}

// UpsertHeuristic writes a slug-derived bill. An existing title is kept so a
// heuristic row never degrades authoritative or fresher data.
func (s *DossierStore) UpsertHeuristic(ctx context.Context, d *domain.Dossier) error {
	query := `
		INSERT INTO dossiers (ref, title, short_title, type, origin, url)
		VALUES (:ref, :title, :short_title, :type, :origin, :url)
		ON CONFLICT (ref) DO UPDATE SET
			title = COALESCE(NULLIF(dossiers.title, ''), EXCLUDED.title),
			updated_at = now()`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, d)
	return err
}

// LinkScrutin records a (bill, vote) link, unique per pair.
func (s *DossierStore) LinkScrutin(ctx context.Context, link *domain.DossierScrutin) error {
	query := `
		INSERT INTO dossier_scrutins (dossier_ref, scrutin_ref, role)
		VALUES (:dossier_ref, :scrutin_ref, :role)
		ON CONFLICT (dossier_ref, scrutin_ref) DO NOTHING`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, link)
	return err
}

// ListRefsWithTitles pages through all stored bills (1000 per page) for the
// batch tagger.
func (s *DossierStore) ListRefsWithTitles(ctx context.Context) (map[string]string, error) {
	titles := make(map[string]string)
	for offset := 0; ; offset += pageSize {
		var page []struct {
			Ref   string `db:"ref"`
			Title string `db:"title"`
		}
		err := s.db.SelectContext(ctx, &page,
			"SELECT ref, title FROM dossiers ORDER BY ref LIMIT $1 OFFSET $2",
			pageSize, offset,
		)
		if err != nil {
			return nil, err
		}
		for _, row := range page {
			titles[row.Ref] = row.Title
		}
		if len(page) < pageSize {
			return titles, nil
		}
	}
}

func (s *DossierStore) GetByRef(ctx context.Context, ref string) (*domain.Dossier, error) {
	var d domain.Dossier
	err := s.db.GetContext(ctx, &d, `
		SELECT id, ref, title, short_title, type, origin, url, created_at, updated_at
		FROM dossiers WHERE ref = $1`, ref)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
