package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"assemblee_syncer/internal/bills"
	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
	"assemblee_syncer/internal/votes"
)

const jobSyncScrutins = "sync_scrutins"

// ScrutinSyncService ingests roll-call votes: upsert the vote row, replace
// its ballot list, then best-effort bill linking and thematic tagging.
// Linking and tagging failures never abort a vote's own ingestion.
type ScrutinSyncService struct {
	source    Source
	scrutins  ScrutinStore
	seances   SeanceStore
	dossiers  DossierStore
	tagging   *TaggingService
	runLog    RunLogStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	cfg       config.SyncConfig
}

func NewScrutinSyncService(
	source Source,
	scrutins ScrutinStore,
	seances SeanceStore,
	dossiers DossierStore,
	tagging *TaggingService,
	runLog RunLogStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *ScrutinSyncService {
	return &ScrutinSyncService{
		source:    source,
		scrutins:  scrutins,
		seances:   seances,
		dossiers:  dossiers,
		tagging:   tagging,
		runLog:    runLog,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("job", jobSyncScrutins),
		cfg:       cfg,
	}
}

func (s *ScrutinSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.ScrutinSyncStats, error) {
	run, err := startRun(ctx, s.runLog, s.logger, jobSyncScrutins, opts.trigger())
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

func (s *ScrutinSyncService) sync(ctx context.Context, opts RunOptions) (*domain.ScrutinSyncStats, error) {
	from, to := s.dateWindow(opts)

	fetched, err := s.source.FetchScrutins(ctx, opts.legislature(s.cfg.Legislature))
	if err != nil {
		return nil, fmt.Errorf("fetch scrutins: %w", err)
	}

	var targets []opendata.Scrutin
	for _, sc := range fetched {
		if sc.Date.Before(from) || sc.Date.After(to) {
			continue
		}
		targets = append(targets, sc)
	}
	s.logger.Info("scrutins in window",
		"fetched", len(fetched),
		"targets", len(targets),
		"from", from.Format("2006-01-02"),
		"to", to.Format("2006-01-02"),
	)

	refs := make([]string, len(targets))
	for i, sc := range targets {
		refs[i] = sc.Ref
	}
	existing, err := s.scrutins.GetExistingRefs(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("lookup existing scrutins: %w", err)
	}

	stats := &domain.ScrutinSyncStats{}
	for _, raw := range targets {
		if _, recognized := opendata.NormalizeOutcome(raw.SortCode); !recognized {
			s.logger.Warn("unrecognized outcome code, using default",
				"scrutin", raw.Ref,
				"sort_code", raw.SortCode,
			)
		}

		scrutin := s.toDomain(ctx, raw)
		ballots := votes.Extract(raw.Ref, raw.Groupes)

		if opts.DryRun {
			stats.Scrutins++
			stats.ScrutinVotes += len(ballots)
			continue
		}

		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := s.scrutins.Upsert(txCtx, &scrutin); err != nil {
				return fmt.Errorf("upsert scrutin: %w", err)
			}
			if err := s.scrutins.ReplaceVotes(txCtx, raw.Ref, ballots); err != nil {
				return fmt.Errorf("replace votes: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("failed to save scrutin", "scrutin", raw.Ref, "error", err)
			stats.Errors++
			continue
		}
		stats.Scrutins++
		stats.ScrutinVotes += len(ballots)

		// Enrichment is best-effort from here on.
		if linked, err := s.linkBill(ctx, &scrutin); err != nil {
			s.logger.Warn("bill linking failed", "scrutin", raw.Ref, "error", err)
		} else if linked {
			stats.Linked++
		}

		if err := s.tagging.TagEntity(ctx, domain.EntityScrutin, raw.Ref, raw.Title); err != nil {
			s.logger.Warn("tagging failed", "scrutin", raw.Ref, "error", err)
		} else {
			stats.Tagged++
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, &scrutin, !existing[raw.Ref]); err != nil {
				s.logger.Warn("publish failed", "scrutin", raw.Ref, "error", err)
			}
		}
	}

	s.logger.Info("sync completed",
		"scrutins", stats.Scrutins,
		"votes", stats.ScrutinVotes,
		"linked", stats.Linked,
		"tagged", stats.Tagged,
		"errors", stats.Errors,
		"dry_run", opts.DryRun,
	)
	return stats, nil
}

// toDomain converts the decoded vote and resolves its hosting sitting: by
// external sitting reference when the stored row exists, else by date.
func (s *ScrutinSyncService) toDomain(ctx context.Context, raw opendata.Scrutin) domain.Scrutin {
	scrutin := domain.Scrutin{
		Ref:            raw.Ref,
		Numero:         raw.Numero,
		Date:           raw.Date,
		TypeCode:       raw.TypeCode,
		TypeLabel:      raw.TypeLabel,
		Outcome:        raw.Outcome,
		Title:          raw.Title,
		CountFor:       raw.CountFor,
		CountAgainst:   raw.CountAgainst,
		CountAbstain:   raw.CountAbstain,
		CountNonVoting: raw.CountNonVoting,
		URL:            raw.URL,
	}

	if raw.SeanceRef != nil {
		ok, err := s.seances.Exists(ctx, *raw.SeanceRef)
		if err != nil {
			s.logger.Warn("seance lookup failed", "scrutin", raw.Ref, "error", err)
		} else if ok {
			scrutin.SeanceRef = raw.SeanceRef
			return scrutin
		}
	}

	ref, err := s.seances.FindRefByDate(ctx, raw.Date)
	if err != nil {
		s.logger.Warn("seance date lookup failed", "scrutin", raw.Ref, "error", err)
		return scrutin
	}
	scrutin.SeanceRef = ref
	return scrutin
}

func (s *ScrutinSyncService) linkBill(ctx context.Context, scrutin *domain.Scrutin) (bool, error) {
	dossier, ok := bills.FromSubject(scrutin.Title)
	if !ok {
		return false, nil
	}

	if err := s.dossiers.UpsertHeuristic(ctx, &dossier); err != nil {
		return false, fmt.Errorf("upsert heuristic dossier: %w", err)
	}
	link := domain.DossierScrutin{DossierRef: dossier.Ref, ScrutinRef: scrutin.Ref}
	if err := s.dossiers.LinkScrutin(ctx, &link); err != nil {
		return false, fmt.Errorf("link dossier: %w", err)
	}
	return true, nil
}

// dateWindow defaults to the trailing week, kept small to fit execution-time
// limits.
func (s *ScrutinSyncService) dateWindow(opts RunOptions) (from, to time.Time) {
	if opts.Date != nil {
		day := opts.Date.Truncate(24 * time.Hour)
		return day, day
	}
	if opts.From != nil && opts.To != nil {
		return opts.From.Truncate(24 * time.Hour), opts.To.Truncate(24 * time.Hour)
	}

	today := time.Now().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -s.cfg.ScrutinLookbackDays), today
}
