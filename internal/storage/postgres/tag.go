package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"assemblee_syncer/internal/domain"
)

// tagTable maps an entity kind to its assignment table. The two kinds are
// the only table names ever interpolated into queries.
func tagTable(kind domain.EntityKind) string {
	return fmt.Sprintf("%s_tags", string(kind))
}

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// ListCatalog loads the seed tag catalog with keyword lists.
func (s *TagStore) ListCatalog(ctx context.Context) ([]domain.ThematicTag, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, slug, label, keywords FROM thematic_tags ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []domain.ThematicTag
	for rows.Next() {
		var tag domain.ThematicTag
		var keywords pq.StringArray
		if err := rows.Scan(&tag.ID, &tag.Slug, &tag.Label, &keywords); err != nil {
			return nil, err
		}
		tag.Keywords = keywords
		catalog = append(catalog, tag)
	}
	return catalog, rows.Err()
}

// ReplaceAssignments deletes then reinserts one entity's tag rows.
func (s *TagStore) ReplaceAssignments(ctx context.Context, kind domain.EntityKind, entityRef string, assignments []domain.TagAssignment) error {
	ex := GetExecutor(ctx, s.db)

	query := fmt.Sprintf("DELETE FROM %s WHERE entity_ref = $1", tagTable(kind))
	if _, err := ex.ExecContext(ctx, query, entityRef); err != nil {
		return err
	}
	return s.insertAssignments(ctx, kind, assignments)
}

// DeleteAssignments removes tag rows for a batch of entities, chunked to
// bound request size.
func (s *TagStore) DeleteAssignments(ctx context.Context, kind domain.EntityKind, entityRefs []string) error {
	if len(entityRefs) == 0 {
		return nil
	}
	ex := GetExecutor(ctx, s.db)
	query := fmt.Sprintf("DELETE FROM %s WHERE entity_ref = ANY($1)", tagTable(kind))

	return forEachChunk(len(entityRefs), tagChunkSize, func(lo, hi int) error {
		_, err := ex.ExecContext(ctx, query, pq.Array(entityRefs[lo:hi]))
		return err
	})
}

// InsertAssignments upserts assignment rows in chunks of 500.
func (s *TagStore) InsertAssignments(ctx context.Context, kind domain.EntityKind, assignments []domain.TagAssignment) error {
	return s.insertAssignments(ctx, kind, assignments)
}

func (s *TagStore) insertAssignments(ctx context.Context, kind domain.EntityKind, assignments []domain.TagAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	ex := GetExecutor(ctx, s.db)
	query := fmt.Sprintf(`
		INSERT INTO %s (entity_ref, tag_id, confidence, source)
		VALUES (:entity_ref, :tag_id, :confidence, :source)
		ON CONFLICT (entity_ref, tag_id) DO UPDATE SET
			confidence = EXCLUDED.confidence,
			source = EXCLUDED.source`,
		tagTable(kind),
	)

	return forEachChunk(len(assignments), tagChunkSize, func(lo, hi int) error {
		_, err := sqlx.NamedExecContext(ctx, ex, query, assignments[lo:hi])
		return err
	})
}

// ListTaggedRefs pages through the full assignment table (1000 per page) and
// returns the distinct set of already-tagged entity refs.
func (s *TagStore) ListTaggedRefs(ctx context.Context, kind domain.EntityKind) (map[string]bool, error) {
	query := fmt.Sprintf(
		"SELECT DISTINCT entity_ref FROM %s ORDER BY entity_ref LIMIT $1 OFFSET $2",
		tagTable(kind),
	)

	tagged := make(map[string]bool)
	for offset := 0; ; offset += pageSize {
		var page []string
		if err := s.db.SelectContext(ctx, &page, query, pageSize, offset); err != nil {
			return nil, err
		}
		for _, ref := range page {
			tagged[ref] = true
		}
		if len(page) < pageSize {
			return tagged, nil
		}
	}
}

func (s *TagStore) ListAssignments(ctx context.Context, kind domain.EntityKind, entityRef string) ([]domain.TagAssignment, error) {
	query := fmt.Sprintf(`
		SELECT entity_ref, tag_id, confidence, source
		FROM %s WHERE entity_ref = $1 ORDER BY tag_id`,
		tagTable(kind),
	)

	var assignments []domain.TagAssignment
	err := s.db.SelectContext(ctx, &assignments, query, entityRef)
	return assignments, err
}
