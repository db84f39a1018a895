package service

import (
	"context"
	"fmt"
	"log/slog"

	"assemblee_syncer/internal/bills"
	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/domain"
)

const jobSyncDossiers = "sync_dossiers"

// DossierSyncService ingests the authoritative legislative dossier dataset,
// the higher-confidence bill source alongside the vote-title heuristic.
type DossierSyncService struct {
	source   Source
	dossiers DossierStore
	runLog   RunLogStore
	logger   *slog.Logger
	cfg      config.SyncConfig
}

func NewDossierSyncService(source Source, dossiers DossierStore, runLog RunLogStore, logger *slog.Logger, cfg config.SyncConfig) *DossierSyncService {
	return &DossierSyncService{
		source:   source,
		dossiers: dossiers,
		runLog:   runLog,
		logger:   logger.With("job", jobSyncDossiers),
		cfg:      cfg,
	}
}

func (s *DossierSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.DossierSyncStats, error) {
	run, err := startRun(ctx, s.runLog, s.logger, jobSyncDossiers, opts.trigger())
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

func (s *DossierSyncService) sync(ctx context.Context, opts RunOptions) (*domain.DossierSyncStats, error) {
	docs, err := s.source.FetchDossiers(ctx, opts.legislature(s.cfg.Legislature))
	if err != nil {
		return nil, fmt.Errorf("fetch dossiers: %w", err)
	}
	s.logger.Info("fetched dossiers", "count", len(docs))

	stats := &domain.DossierSyncStats{}
	for _, doc := range docs {
		dossier := bills.FromDossier(doc)

		if opts.DryRun {
			stats.TotalDossiers++
			continue
		}
		if err := s.dossiers.Upsert(ctx, &dossier); err != nil {
			s.logger.Error("failed to upsert dossier", "ref", dossier.Ref, "error", err)
			stats.Errors++
			continue
		}
		stats.TotalDossiers++
	}

	s.logger.Info("sync completed",
		"dossiers", stats.TotalDossiers,
		"errors", stats.Errors,
		"dry_run", opts.DryRun,
	)
	return stats, nil
}
