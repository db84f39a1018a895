package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"assemblee_syncer/internal/domain"
)

type OrganeStore struct {
	db *sqlx.DB
}

func NewOrganeStore(db *sqlx.DB) *OrganeStore {
	return &OrganeStore{db: db}
}

func (s *OrganeStore) Upsert(ctx context.Context, o *domain.Organe) error {
	query := `
		INSERT INTO organes (ref, label, short_label, type_code, url)
		VALUES (:ref, :label, :short_label, :type_code, :url)
		ON CONFLICT (ref) DO UPDATE SET
			label = EXCLUDED.label,
			short_label = EXCLUDED.short_label,
			type_code = EXCLUDED.type_code,
			url = EXCLUDED.url`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, o)
	return err
}

// ListRefs pages through all organe refs (1000 per page) until a short page.
// The result is the valid-reference set sittings are filtered against.
func (s *OrganeStore) ListRefs(ctx context.Context) (map[string]bool, error) {
	refs := make(map[string]bool)
	for offset := 0; ; offset += pageSize {
		var page []string
		err := s.db.SelectContext(ctx, &page,
			"SELECT ref FROM organes ORDER BY ref LIMIT $1 OFFSET $2",
			pageSize, offset,
		)
		if err != nil {
			return nil, err
		}
		for _, ref := range page {
			refs[ref] = true
		}
		if len(page) < pageSize {
			return refs, nil
		}
	}
}

// ReplaceMemberships replaces a deputy's commission roster wholesale: the
// source provides the complete membership set on every sync.
func (s *OrganeStore) ReplaceMemberships(ctx context.Context, deputeRef string, memberships []domain.DeputeOrgane) error {
	ex := GetExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		"DELETE FROM depute_organes WHERE depute_ref = $1", deputeRef,
	); err != nil {
		return err
	}

	if len(memberships) == 0 {
		return nil
	}

	return forEachChunk(len(memberships), insertChunkSize, func(lo, hi int) error {
		_, err := sqlx.NamedExecContext(ctx, ex, `
			INSERT INTO depute_organes (depute_ref, organe_ref, start_date, end_date)
			VALUES (:depute_ref, :organe_ref, :start_date, :end_date)
			ON CONFLICT (depute_ref, organe_ref) DO NOTHING`,
			memberships[lo:hi],
		)
		return err
	})
}
