package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/resolver"
)

const jobSyncDeputes = "sync_deputes"

// DeputeSyncService ingests the acteurs archive: organes first (they are the
// reference set everything else resolves against), then deputies with their
// resolved constituency/group fields and filtered commission memberships.
type DeputeSyncService struct {
	source    Source
	deputes   DeputeStore
	organes   OrganeStore
	runLog    RunLogStore
	txManager TransactionManager
	logger    *slog.Logger
	cfg       config.SyncConfig
}

func NewDeputeSyncService(
	source Source,
	deputes DeputeStore,
	organes OrganeStore,
	runLog RunLogStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *DeputeSyncService {
	return &DeputeSyncService{
		source:    source,
		deputes:   deputes,
		organes:   organes,
		runLog:    runLog,
		txManager: txManager,
		logger:    logger.With("job", jobSyncDeputes),
		cfg:       cfg,
	}
}

func (s *DeputeSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.DeputeSyncStats, error) {
	run, err := startRun(ctx, s.runLog, s.logger, jobSyncDeputes, opts.trigger())
	if err != nil {
		return nil, fmt.Errorf("start run log: %w", err)
	}

	stats, err := s.sync(ctx, opts)
	if err != nil {
		run.fail(ctx, err)
		return nil, err
	}
	run.success(ctx, stats)
	return stats, nil
}

func (s *DeputeSyncService) sync(ctx context.Context, opts RunOptions) (*domain.DeputeSyncStats, error) {
	legislature := opts.legislature(s.cfg.Legislature)

	organes, err := s.source.FetchOrganes(ctx, legislature)
	if err != nil {
		return nil, fmt.Errorf("fetch organes: %w", err)
	}
	acteurs, err := s.source.FetchActeurs(ctx, legislature)
	if err != nil {
		return nil, fmt.Errorf("fetch acteurs: %w", err)
	}

	s.logger.Info("fetched archive", "organes", len(organes), "acteurs", len(acteurs))

	stats := &domain.DeputeSyncStats{}
	organeMap := make(map[string]domain.Organe, len(organes))
	for i := range organes {
		organeMap[organes[i].Ref] = organes[i]
		if opts.DryRun {
			stats.Organes++
			continue
		}
		if err := s.organes.Upsert(ctx, &organes[i]); err != nil {
			s.logger.Error("failed to upsert organe", "ref", organes[i].Ref, "error", err)
			stats.Errors++
			continue
		}
		stats.Organes++
	}

	now := time.Now()
	for _, acteur := range acteurs {
		depute := resolver.ResolveDepute(acteur, organeMap, legislature, now)
		memberships := resolver.FilterMemberships(acteur.Ref, acteur.Mandats)

		if opts.DryRun {
			stats.Deputes++
			stats.Memberships += len(memberships)
			continue
		}

		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := s.deputes.Upsert(txCtx, &depute); err != nil {
				return fmt.Errorf("upsert depute: %w", err)
			}
			if err := s.organes.ReplaceMemberships(txCtx, acteur.Ref, memberships); err != nil {
				return fmt.Errorf("replace memberships: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("failed to save depute", "ref", acteur.Ref, "error", err)
			stats.Errors++
			continue
		}

		stats.Deputes++
		stats.Memberships += len(memberships)
	}

	s.logger.Info("sync completed",
		"deputes", stats.Deputes,
		"organes", stats.Organes,
		"memberships", stats.Memberships,
		"errors", stats.Errors,
		"dry_run", opts.DryRun,
	)
	return stats, nil
}
