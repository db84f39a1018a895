package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/db"
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/httpapi"
	"assemblee_syncer/internal/publisher"
	"assemblee_syncer/internal/scheduler"
	"assemblee_syncer/internal/service"
	"assemblee_syncer/internal/source/opendata"
	"assemblee_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrationsPath := flag.String("migrations", "migrations", "path to SQL migrations")
	runMigrate := flag.Bool("migrate", false, "apply pending migrations and exit")
	serve := flag.Bool("serve", false, "run the scheduler and trigger endpoints")
	jobName := flag.String("job", "", "run one job and exit: deputes, seances, scrutins, dossiers or tags")
	date := flag.String("date", "", "sync a single day (YYYY-MM-DD)")
	from := flag.String("from", "", "sync window start (YYYY-MM-DD)")
	to := flag.String("to", "", "sync window end (YYYY-MM-DD)")
	dryRun := flag.Bool("dry-run", false, "fetch and resolve without writing")
	legislature := flag.Int("legislature", 0, "override the configured legislature")
	force := flag.Bool("force", false, "re-tag already tagged entities")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if *runMigrate {
		if err := db.Migrate(cfg.Database.URL(), *migrationsPath); err != nil {
			logger.Error("migration failed", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
		return
	}

	conn, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher when enabled
	var scrutinPublisher service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		scrutinPublisher = rabbitMQ
	}

	// Initialize stores
	deputeStore := postgres.NewDeputeStore(conn)
	organeStore := postgres.NewOrganeStore(conn)
	seanceStore := postgres.NewSeanceStore(conn)
	scrutinStore := postgres.NewScrutinStore(conn)
	dossierStore := postgres.NewDossierStore(conn)
	tagStore := postgres.NewTagStore(conn)
	runLogStore := postgres.NewIngestionLogStore(conn)
	txManager := postgres.NewTransactionManager(conn)

	// Initialize the open-data source
	fetcher := opendata.NewFetcher(opendata.Config{
		Timeout:  cfg.Archives.Timeout,
		CacheTTL: cfg.Archives.CacheTTL,
	}, logger)
	source := opendata.NewClient(fetcher, opendata.ClientConfig{
		ActeursURL:  cfg.Archives.ActeursURL,
		ReunionsURL: cfg.Archives.ReunionsURL,
		ScrutinsURL: cfg.Archives.ScrutinsURL,
		DossiersURL: cfg.Archives.DossiersURL,
	}, logger)

	// Create the ingestion services
	taggingService := service.NewTaggingService(tagStore, scrutinStore, dossierStore, runLogStore, logger)
	deputeService := service.NewDeputeSyncService(source, deputeStore, organeStore, runLogStore, txManager, logger, cfg.Sync)
	seanceService := service.NewSeanceSyncService(source, seanceStore, organeStore, runLogStore, txManager, logger, cfg.Sync)
	scrutinService := service.NewScrutinSyncService(
		source,
		scrutinStore,
		seanceStore,
		dossierStore,
		taggingService,
		runLogStore,
		txManager,
		scrutinPublisher,
		logger,
		cfg.Sync,
	)
	dossierService := service.NewDossierSyncService(source, dossierStore, runLogStore, logger, cfg.Sync)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *jobName != "" {
		opts, err := cliOptions(*date, *from, *to, *dryRun, *legislature, *force)
		if err != nil {
			logger.Error("invalid flags", "error", err)
			os.Exit(1)
		}
		if err := runOnce(ctx, *jobName, opts, services{
			deputes:  deputeService,
			seances:  seanceService,
			scrutins: scrutinService,
			dossiers: dossierService,
			tagging:  taggingService,
		}); err != nil {
			logger.Error("job failed", "job", *jobName, "error", err)
			os.Exit(1)
		}
		return
	}

	if !*serve {
		flag.Usage()
		os.Exit(2)
	}

	scheduled := domain.TriggerScheduled
	jobs := []scheduler.Job{
		{Name: "sync_deputes", Run: func(ctx context.Context) error {
			_, err := deputeService.Sync(ctx, service.RunOptions{Trigger: scheduled})
			return err
		}},
		{Name: "sync_seances", Run: func(ctx context.Context) error {
			_, err := seanceService.Sync(ctx, service.RunOptions{Trigger: scheduled})
			return err
		}},
		{Name: "sync_scrutins", Run: func(ctx context.Context) error {
			_, err := scrutinService.Sync(ctx, service.RunOptions{Trigger: scheduled})
			return err
		}},
		{Name: "sync_dossiers", Run: func(ctx context.Context) error {
			_, err := dossierService.Sync(ctx, service.RunOptions{Trigger: scheduled})
			return err
		}},
		{Name: "tag_entities", Run: func(ctx context.Context) error {
			_, err := taggingService.RunBatch(ctx, service.RunOptions{Trigger: scheduled})
			return err
		}},
	}

	sched := scheduler.NewScheduler(jobs, cfg.Sync.Interval, logger)

	api := httpapi.NewServer(httpapi.Services{
		Deputes:  deputeService,
		Seances:  seanceService,
		Scrutins: scrutinService,
		Dossiers: dossierService,
		Tagging:  taggingService,
	}, cfg.HTTP.TriggerSecret, logger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Minute,
	}

	go func() {
		logger.Info("trigger endpoints listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting assemblee syncer",
		"legislature", cfg.Sync.Legislature,
		"interval", cfg.Sync.Interval,
	)

	err = sched.Start(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

type services struct {
	deputes  *service.DeputeSyncService
	seances  *service.SeanceSyncService
	scrutins *service.ScrutinSyncService
	dossiers *service.DossierSyncService
	tagging  *service.TaggingService
}

func runOnce(ctx context.Context, job string, opts service.RunOptions, s services) error {
	switch job {
	case "deputes":
		_, err := s.deputes.Sync(ctx, opts)
		return err
	case "seances":
		_, err := s.seances.Sync(ctx, opts)
		return err
	case "scrutins":
		_, err := s.scrutins.Sync(ctx, opts)
		return err
	case "dossiers":
		_, err := s.dossiers.Sync(ctx, opts)
		return err
	case "tags":
		_, err := s.tagging.RunBatch(ctx, opts)
		return err
	default:
		return fmt.Errorf("unknown job %q", job)
	}
}

func cliOptions(date, from, to string, dryRun bool, legislature int, force bool) (service.RunOptions, error) {
	opts := service.RunOptions{
		Trigger:     domain.TriggerManual,
		DryRun:      dryRun,
		Legislature: legislature,
		Force:       force,
	}

	parse := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
		}
		return &t, nil
	}

	var err error
	if opts.Date, err = parse(date); err != nil {
		return opts, err
	}
	if opts.From, err = parse(from); err != nil {
		return opts, err
	}
	if opts.To, err = parse(to); err != nil {
		return opts, err
	}
	return opts, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
