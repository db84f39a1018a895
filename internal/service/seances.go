package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
)

const jobSyncSeances = "sync_seances"

// SeanceSyncService ingests sittings and commission reunions with their
// agendas for a target date window, filtered against the stored valid-organe
// reference set.
type SeanceSyncService struct {
	source    Source
	seances   SeanceStore
	organes   OrganeStore
	runLog    RunLogStore
	txManager TransactionManager
	logger    *slog.Logger
	cfg       config.SyncConfig
}

func NewSeanceSyncService(
	source Source,
	seances SeanceStore,
	organes OrganeStore,
	runLog RunLogStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SeanceSyncService {
	return &SeanceSyncService{
		source:    source,
		seances:   seances,
		organes:   organes,
		runLog:    runLog,
		txManager: txManager,
		logger:    logger.With("job", jobSyncSeances),
		cfg:       cfg,
	}
}

func (s *SeanceSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.SeanceSyncStats, error) {
	run, err := startRun(ctx, s.runLog, s.logger, jobSyncSeances, opts.trigger())
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

func (s *SeanceSyncService) sync(ctx context.Context, opts RunOptions) (*domain.SeanceSyncStats, error) {
	from, to := s.dateWindow(opts)
	s.logger.Info("computing target window", "from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"))

	validOrganes, err := s.organes.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list valid organes: %w", err)
	}

	reunions, err := s.source.FetchReunions(ctx, opts.legislature(s.cfg.Legislature))
	if err != nil {
		return nil, fmt.Errorf("fetch reunions: %w", err)
	}

	stats := &domain.SeanceSyncStats{}
	for _, reunion := range reunions {
		if reunion.Date.Before(from) || reunion.Date.After(to) {
			continue
		}

		if reunion.OrganeRef != nil && !validOrganes[*reunion.OrganeRef] {
			s.logger.Warn("dropping sitting with unknown organe",
				"seance", reunion.Ref,
				"organe_ref", *reunion.OrganeRef,
			)
			stats.DroppedOrgane++
			continue
		}

		if opts.DryRun {
			stats.TotalSeances++
			stats.TotalItems += len(reunion.Items)
			continue
		}

		if err := s.saveSeance(ctx, reunion); err != nil {
			s.logger.Error("failed to save sitting", "seance", reunion.Ref, "error", err)
			stats.Errors++
			continue
		}
		stats.TotalSeances++
		stats.TotalItems += len(reunion.Items)
	}

	s.logger.Info("sync completed",
		"seances", stats.TotalSeances,
		"items", stats.TotalItems,
		"dropped_organe", stats.DroppedOrgane,
		"errors", stats.Errors,
		"dry_run", opts.DryRun,
	)
	return stats, nil
}

func (s *SeanceSyncService) saveSeance(ctx context.Context, reunion opendata.Reunion) error {
	seance := domain.Seance{
		Ref:         reunion.Ref,
		Date:        reunion.Date,
		StartTime:   reunion.Start,
		EndTime:     reunion.End,
		Type:        reunion.Type,
		Title:       reunion.Title,
		Description: reunion.Description,
		Location:    reunion.Location,
		OrganeRef:   reunion.OrganeRef,
	}

	checksum := sha256.Sum256(reunion.Raw)
	meta := domain.SourceMetadata{
		SeanceRef:    reunion.Ref,
		SourceURL:    reunion.SourceURL,
		LastSyncedAt: time.Now().UTC(),
		Checksum:     hex.EncodeToString(checksum[:]),
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.seances.Upsert(txCtx, &seance); err != nil {
			return fmt.Errorf("upsert seance: %w", err)
		}
		if err := s.seances.ReplaceAgendaItems(txCtx, reunion.Ref, reunion.Items); err != nil {
			return fmt.Errorf("replace agenda items: %w", err)
		}
		if err := s.seances.ReplaceAttendance(txCtx, reunion.Ref, reunion.Attendance); err != nil {
			return fmt.Errorf("replace attendance: %w", err)
		}
		if err := s.seances.UpsertSourceMetadata(txCtx, &meta); err != nil {
			return fmt.Errorf("upsert source metadata: %w", err)
		}
		return nil
	})
}

// dateWindow resolves the target date set: an explicit date, an explicit
// range, or the configured lookback/lookahead window.
func (s *SeanceSyncService) dateWindow(opts RunOptions) (from, to time.Time) {
	if opts.Date != nil {
		day := opts.Date.Truncate(24 * time.Hour)
		return day, day
	}
	if opts.From != nil && opts.To != nil {
		return opts.From.Truncate(24 * time.Hour), opts.To.Truncate(24 * time.Hour)
	}

	today := time.Now().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -s.cfg.SeanceLookbackDays), today.AddDate(0, 0, s.cfg.SeanceLookaheadDays)
}
