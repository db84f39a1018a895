package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"assemblee_syncer/internal/config"
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/service/mocks"
	"assemblee_syncer/internal/source/opendata"
)

type SeanceSyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSource
	seances   *mocks.MockSeanceStore
	organes   *mocks.MockOrganeStore
	runLog    *mocks.MockRunLogStore
	txManager *mocks.MockTransactionManager

	service *SeanceSyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SeanceSyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.seances = mocks.NewMockSeanceStore(s.ctrl)
	s.organes = mocks.NewMockOrganeStore(s.ctrl)
	s.runLog = mocks.NewMockRunLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.cfg = config.SyncConfig{
		Legislature:         17,
		SeanceLookbackDays:  3,
		SeanceLookaheadDays: 14,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSeanceSyncService(
		s.source,
		s.seances,
		s.organes,
		s.runLog,
		s.txManager,
		s.logger,
		s.cfg,
	)
}

func (s *SeanceSyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSeanceSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeanceSyncServiceTestSuite))
}

func (s *SeanceSyncServiceTestSuite) expectRunSuccess(ctx context.Context) {
	id := uuid.New()
	s.runLog.EXPECT().Start(ctx, jobSyncSeances, domain.TriggerManual).
		Return(&domain.IngestionLog{ID: id, JobName: jobSyncSeances, Status: domain.RunStatusRunning}, nil)
	s.runLog.EXPECT().Finish(ctx, id, domain.RunStatusSuccess, gomock.Any(), nil).Return(nil)
}

func (s *SeanceSyncServiceTestSuite) TestSync_SavesSittingWithAgenda() {
	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	start := day.Add(15 * time.Hour)
	organeRef := "PO800000"
	present := "présent"
	raw := json.RawMessage(`{"reunion": {"uid": "RU1"}}`)

	reunions := []opendata.Reunion{
		{
			Ref:       "RU1",
			Date:      day,
			Start:     &start,
			Type:      domain.SeanceTypePlenary,
			OrganeRef: &organeRef,
			Items: []domain.AgendaItem{
				{SeanceRef: "RU1", Title: "Questions au Gouvernement"},
				{SeanceRef: "RU1", Title: "Discussion du projet de loi de finances"},
			},
			Attendance: []domain.SeanceAttendance{
				{SeanceRef: "RU1", DeputeRef: "PA842279", Presence: &present},
			},
			SourceURL: "https://data.assemblee-nationale.fr/agenda.zip",
			Raw:       raw,
		},
		{
			// outside the window
			Ref:   "RU2",
			Date:  day.AddDate(0, 0, 30),
			Start: &start,
		},
	}

	s.expectRunSuccess(ctx)

	s.organes.EXPECT().ListRefs(ctx).Return(map[string]bool{organeRef: true}, nil)
	s.source.EXPECT().FetchReunions(ctx, 17).Return(reunions, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	s.seances.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, se *domain.Seance) error {
			s.Equal("RU1", se.Ref)
			s.Equal(day, se.Date)
			s.Equal(&start, se.StartTime)
			s.Equal(domain.SeanceTypePlenary, se.Type)
			s.Equal(&organeRef, se.OrganeRef)
			return nil
		},
	)
	s.seances.EXPECT().ReplaceAgendaItems(ctx, "RU1", reunions[0].Items).Return(nil)
	s.seances.EXPECT().ReplaceAttendance(ctx, "RU1", reunions[0].Attendance).Return(nil)

	checksum := sha256.Sum256(raw)
	s.seances.EXPECT().UpsertSourceMetadata(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.SourceMetadata) error {
			s.Equal("RU1", meta.SeanceRef)
			s.Equal(hex.EncodeToString(checksum[:]), meta.Checksum)
			s.False(meta.LastSyncedAt.IsZero())
			return nil
		},
	)

	stats, err := s.service.Sync(ctx, RunOptions{Date: &day})

	s.NoError(err)
	s.Equal(1, stats.TotalSeances)
	s.Equal(2, stats.TotalItems)
	s.Equal(0, stats.DroppedOrgane)
	s.Equal(0, stats.Errors)
}

func (s *SeanceSyncServiceTestSuite) TestSync_DropsUnknownOrgane() {
	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	unknown := "PO999999"

	reunions := []opendata.Reunion{
		{Ref: "RU1", Date: day, OrganeRef: &unknown},
	}

	s.expectRunSuccess(ctx)

	s.organes.EXPECT().ListRefs(ctx).Return(map[string]bool{"PO800000": true}, nil)
	s.source.EXPECT().FetchReunions(ctx, 17).Return(reunions, nil)

	stats, err := s.service.Sync(ctx, RunOptions{Date: &day})

	s.NoError(err)
	s.Equal(0, stats.TotalSeances)
	s.Equal(1, stats.DroppedOrgane)
}

func (s *SeanceSyncServiceTestSuite) TestSync_DryRun() {
	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	reunions := []opendata.Reunion{
		{Ref: "RU1", Date: day, Items: []domain.AgendaItem{{SeanceRef: "RU1", Title: "point"}}},
	}

	s.expectRunSuccess(ctx)

	s.organes.EXPECT().ListRefs(ctx).Return(map[string]bool{}, nil)
	s.source.EXPECT().FetchReunions(ctx, 17).Return(reunions, nil)

	stats, err := s.service.Sync(ctx, RunOptions{Date: &day, DryRun: true})

	s.NoError(err)
	s.Equal(1, stats.TotalSeances)
	s.Equal(1, stats.TotalItems)
}

func (s *SeanceSyncServiceTestSuite) TestSync_FetchError() {
	ctx := context.Background()
	id := uuid.New()

	s.runLog.EXPECT().Start(ctx, jobSyncSeances, domain.TriggerManual).
		Return(&domain.IngestionLog{ID: id}, nil)
	s.runLog.EXPECT().Finish(ctx, id, domain.RunStatusError, nil, gomock.Any()).Return(nil)

	s.organes.EXPECT().ListRefs(ctx).Return(map[string]bool{}, nil)
	s.source.EXPECT().FetchReunions(ctx, 17).Return(nil, errors.New("timeout"))

	stats, err := s.service.Sync(ctx, RunOptions{})

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "fetch reunions")
}

func (s *SeanceSyncServiceTestSuite) TestSync_SaveFailureContinues() {
	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	reunions := []opendata.Reunion{
		{Ref: "RU1", Date: day},
		{Ref: "RU2", Date: day},
	}

	s.expectRunSuccess(ctx)

	s.organes.EXPECT().ListRefs(ctx).Return(map[string]bool{}, nil)
	s.source.EXPECT().FetchReunions(ctx, 17).Return(reunions, nil)

	gomock.InOrder(
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("connection reset")),
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		),
	)
	s.seances.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.seances.EXPECT().ReplaceAgendaItems(ctx, "RU2", gomock.Any()).Return(nil)
	s.seances.EXPECT().ReplaceAttendance(ctx, "RU2", gomock.Any()).Return(nil)
	s.seances.EXPECT().UpsertSourceMetadata(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Sync(ctx, RunOptions{Date: &day})

	s.NoError(err)
	s.Equal(1, stats.TotalSeances)
	s.Equal(1, stats.Errors)
}
