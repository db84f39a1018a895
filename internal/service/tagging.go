package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/tagger"
)

const jobTagEntities = "tag_entities"

// TaggingService assigns thematic tags to votes and bills. The tag catalog
// is cached on the service with a TTL; per-entity tagging replaces that
// entity's rows, batch tagging diffs the assignment table against the full
// entity set and writes in chunks.
type TaggingService struct {
	tags     TagStore
	scrutins ScrutinStore
	dossiers DossierStore
	runLog   RunLogStore
	logger   *slog.Logger

	mu            sync.Mutex
	catalog       []domain.ThematicTag
	catalogExpiry time.Time
	catalogTTL    time.Duration
}

func NewTaggingService(
	tags TagStore,
	scrutins ScrutinStore,
	dossiers DossierStore,
	runLog RunLogStore,
	logger *slog.Logger,
) *TaggingService {
	return &TaggingService{
		tags:       tags,
		scrutins:   scrutins,
		dossiers:   dossiers,
		runLog:     runLog,
		logger:     logger.With("job", jobTagEntities),
		catalogTTL: time.Hour,
	}
}

// Catalog returns the tag catalog, refreshing the cache on expiry.
func (s *TaggingService) Catalog(ctx context.Context) ([]domain.ThematicTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil && time.Now().Before(s.catalogExpiry) {
		return s.catalog, nil
	}

	catalog, err := s.tags.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tag catalog: %w", err)
	}
	s.catalog = catalog
	s.catalogExpiry = time.Now().Add(s.catalogTTL)
	return catalog, nil
}

// TagEntity re-tags a single entity: its existing assignment rows are
// replaced wholesale by the current matches.
func (s *TaggingService) TagEntity(ctx context.Context, kind domain.EntityKind, entityRef, title string) error {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return err
	}

	matches := tagger.MatchText(title, "", catalog)
	assignments := tagger.Assignments(entityRef, matches)
	if err := s.tags.ReplaceAssignments(ctx, kind, entityRef, assignments); err != nil {
		return fmt.Errorf("replace assignments: %w", err)
	}
	return nil
}

// RunBatch tags all stored votes and bills. Without force only untagged
// entities are processed, determined by diffing the assignment table against
// the full entity set. The matching pass is pure; only the write pass does
// I/O, chunked to bound request size.
func (s *TaggingService) RunBatch(ctx context.Context, opts RunOptions) (*domain.TaggingStats, error) {
	run, err := startRun(ctx, s.runLog, s.logger, jobTagEntities, opts.trigger())
	if err != nil {
		return nil, fmt.Errorf("start run log: %w", err)
	}

	stats, err := s.runBatch(ctx, opts)
	if err != nil {
		run.fail(ctx, err)
		return nil, err
	}
	run.success(ctx, stats)
	return stats, nil
}

func (s *TaggingService) runBatch(ctx context.Context, opts RunOptions) (*domain.TaggingStats, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.TaggingStats{}

	scrutinCount, assignments, err := s.batchKind(ctx, domain.EntityScrutin, catalog, opts)
	if err != nil {
		return nil, err
	}
	stats.Scrutins = scrutinCount
	stats.Assignments += assignments

	dossierCount, assignments, err := s.batchKind(ctx, domain.EntityDossier, catalog, opts)
	if err != nil {
		return nil, err
	}
	stats.Dossiers = dossierCount
	stats.Assignments += assignments

	s.logger.Info("batch tagging completed",
		"scrutins", stats.Scrutins,
		"dossiers", stats.Dossiers,
		"assignments", stats.Assignments,
		"force", opts.Force,
		"dry_run", opts.DryRun,
	)
	return stats, nil
}

func (s *TaggingService) batchKind(ctx context.Context, kind domain.EntityKind, catalog []domain.ThematicTag, opts RunOptions) (entities, written int, err error) {
	titles, err := s.listTitles(ctx, kind)
	if err != nil {
		return 0, 0, fmt.Errorf("list %s entities: %w", kind, err)
	}

	targets := titles
	if !opts.Force {
		tagged, err := s.tags.ListTaggedRefs(ctx, kind)
		if err != nil {
			return 0, 0, fmt.Errorf("list tagged %s refs: %w", kind, err)
		}
		targets = make(map[string]string, len(titles))
		for ref, title := range titles {
			if !tagged[ref] {
				targets[ref] = title
			}
		}
	}

	// Pure matching pass, no I/O. Under force every targeted ref is cleared,
	// including entities whose text no longer matches any keyword.
	var deleteRefs []string
	var assignments []domain.TagAssignment
	for ref, title := range targets {
		if opts.Force {
			deleteRefs = append(deleteRefs, ref)
		}
		matches := tagger.MatchText(title, "", catalog)
		if len(matches) == 0 {
			continue
		}
		assignments = append(assignments, tagger.Assignments(ref, matches)...)
	}

	if opts.DryRun {
		return len(targets), len(assignments), nil
	}

	// Write pass: chunked deletes then chunked upserts. Chunk failures are
	// logged by the store error and do not roll back earlier chunks.
	if opts.Force {
		if err := s.tags.DeleteAssignments(ctx, kind, deleteRefs); err != nil {
			s.logger.Warn("some delete chunks failed", "kind", kind, "error", err)
		}
	}
	if err := s.tags.InsertAssignments(ctx, kind, assignments); err != nil {
		s.logger.Warn("some insert chunks failed", "kind", kind, "error", err)
	}

	return len(targets), len(assignments), nil
}

func (s *TaggingService) listTitles(ctx context.Context, kind domain.EntityKind) (map[string]string, error) {
	switch kind {
	case domain.EntityScrutin:
		return s.scrutins.ListRefsWithTitles(ctx)
	case domain.EntityDossier:
		return s.dossiers.ListRefsWithTitles(ctx)
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}
