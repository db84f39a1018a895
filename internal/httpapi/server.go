// Package httpapi exposes the manual trigger endpoints for the ingestion
// jobs, guarded by a shared secret.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/service"
)

// Services groups the ingestion entry points the trigger surface drives.
type Services struct {
	Deputes  *service.DeputeSyncService
	Seances  *service.SeanceSyncService
	Scrutins *service.ScrutinSyncService
	Dossiers *service.DossierSyncService
	Tagging  *service.TaggingService
}

type Server struct {
	services Services
	secret   string
	logger   *slog.Logger
}

func NewServer(services Services, secret string, logger *slog.Logger) *Server {
	return &Server{
		services: services,
		secret:   secret,
		logger:   logger.With("component", "httpapi"),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireSecret)
		r.Handle("/sync/deputes", s.trigger(s.runDeputes))
		r.Handle("/sync/seances", s.trigger(s.runSeances))
		r.Handle("/sync/scrutins", s.trigger(s.runScrutins))
		r.Handle("/sync/dossiers", s.trigger(s.runDossiers))
		r.Handle("/sync/tags", s.trigger(s.runTags))
	})

	return r
}

// requireSecret accepts the shared secret in the Authorization header, raw
// or Bearer-prefixed.
func (s *Server) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if s.secret == "" || token != s.secret {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing authorization")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type triggerRequest struct {
	Date        string `json:"date"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	DryRun      bool   `json:"dryRun"`
	Legislature int    `json:"legislature"`
	Force       bool   `json:"force"`
}

type runFunc func(ctx context.Context, opts service.RunOptions) (any, error)

// trigger accepts POST (with an optional JSON body) and GET (no body), runs
// the job, and returns its summary. Fetch and config failures surface as 5xx
// bodies; partial per-row failures stay in the persisted run log.
func (s *Server) trigger(run runFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET or POST")
			return
		}

		var req triggerRequest
		if r.Method == http.MethodPost && r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				writeError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
				return
			}
		}

		opts, err := req.toOptions()
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}

		result, err := run(r.Context(), opts)
		if err != nil {
			s.logger.Error("triggered run failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "sync_failed", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, withSuccess(result))
	})
}

func (r triggerRequest) toOptions() (service.RunOptions, error) {
	opts := service.RunOptions{
		Trigger:     domain.TriggerManual,
		DryRun:      r.DryRun,
		Legislature: r.Legislature,
		Force:       r.Force,
	}

	parse := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var err error
	if opts.Date, err = parse(r.Date); err != nil {
		return opts, errInvalidDate(r.Date)
	}
	if opts.From, err = parse(r.FromDate); err != nil {
		return opts, errInvalidDate(r.FromDate)
	}
	if opts.To, err = parse(r.ToDate); err != nil {
		return opts, errInvalidDate(r.ToDate)
	}
	return opts, nil
}

func (s *Server) runDeputes(ctx context.Context, opts service.RunOptions) (any, error) {
	return s.services.Deputes.Sync(ctx, opts)
}

func (s *Server) runSeances(ctx context.Context, opts service.RunOptions) (any, error) {
	return s.services.Seances.Sync(ctx, opts)
}

func (s *Server) runScrutins(ctx context.Context, opts service.RunOptions) (any, error) {
	return s.services.Scrutins.Sync(ctx, opts)
}

func (s *Server) runDossiers(ctx context.Context, opts service.RunOptions) (any, error) {
	return s.services.Dossiers.Sync(ctx, opts)
}

func (s *Server) runTags(ctx context.Context, opts service.RunOptions) (any, error) {
	return s.services.Tagging.RunBatch(ctx, opts)
}
