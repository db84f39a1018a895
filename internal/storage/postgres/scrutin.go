package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"assemblee_syncer/internal/domain"
)

type ScrutinStore struct {
	db *sqlx.DB
}

func NewScrutinStore(db *sqlx.DB) *ScrutinStore {
	return &ScrutinStore{db: db}
}

func (s *ScrutinStore) Upsert(ctx context.Context, sc *domain.Scrutin) error {
	query := `
		INSERT INTO scrutins (
			ref, numero, seance_ref, date, type_code, type_label, outcome,
			title, count_for, count_against, count_abstain, count_non_voting, url
		) VALUES (
			:ref, :numero, :seance_ref, :date, :type_code, :type_label, :outcome,
			:title, :count_for, :count_against, :count_abstain, :count_non_voting, :url
		)
		ON CONFLICT (ref) DO UPDATE SET
			numero = EXCLUDED.numero,
			seance_ref = EXCLUDED.seance_ref,
			date = EXCLUDED.date,
			type_code = EXCLUDED.type_code,
			type_label = EXCLUDED.type_label,
			outcome = EXCLUDED.outcome,
			title = EXCLUDED.title,
			count_for = EXCLUDED.count_for,
			count_against = EXCLUDED.count_against,
			count_abstain = EXCLUDED.count_abstain,
			count_non_voting = EXCLUDED.count_non_voting,
			url = EXCLUDED.url,
			updated_at = now()`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, sc)
	return err
}

// ReplaceVotes replaces a vote's full ballot list; the source provides a
// complete snapshot per roll call each time.
func (s *ScrutinStore) ReplaceVotes(ctx context.Context, scrutinRef string, ballots []domain.ScrutinVote) error {
	ex := GetExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		"DELETE FROM scrutin_votes WHERE scrutin_ref = $1", scrutinRef,
	); err != nil {
		return err
	}

	if len(ballots) == 0 {
		return nil
	}

	return forEachChunk(len(ballots), insertChunkSize, func(lo, hi int) error {
		_, err := sqlx.NamedExecContext(ctx, ex, `
			INSERT INTO scrutin_votes (scrutin_ref, depute_ref, position)
			VALUES (:scrutin_ref, :depute_ref, :position)
			ON CONFLICT (scrutin_ref, depute_ref) DO NOTHING`,
			ballots[lo:hi],
		)
		return err
	})
}

// GetExistingRefs reports which of the given refs are already stored.
func (s *ScrutinStore) GetExistingRefs(ctx context.Context, refs []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(refs) == 0 {
		return existing, nil
	}

	var found []string
	err := s.db.SelectContext(ctx, &found,
		"SELECT ref FROM scrutins WHERE ref = ANY($1)", pq.Array(refs),
	)
	if err != nil {
		return nil, err
	}
	for _, ref := range found {
		existing[ref] = true
	}
	return existing, nil
}

// ListRefsWithTitles pages through all stored votes (1000 per page), used by
// the batch tagger to diff against already-tagged entities.
func (s *ScrutinStore) ListRefsWithTitles(ctx context.Context) (map[string]string, error) {
	titles := make(map[string]string)
	for offset := 0; ; offset += pageSize {
		var page []struct {
			Ref   string `db:"ref"`
			Title string `db:"title"`
		}
		err := s.db.SelectContext(ctx, &page,
			"SELECT ref, title FROM scrutins ORDER BY ref LIMIT $1 OFFSET $2",
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

func (s *ScrutinStore) CountVotes(ctx context.Context, scrutinRef string) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT count(*) FROM scrutin_votes WHERE scrutin_ref = $1", scrutinRef,
	)
	return n, err
}
