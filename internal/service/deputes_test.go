package service

import (
	"context"
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

type DeputeSyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSource
	deputes   *mocks.MockDeputeStore
	organes   *mocks.MockOrganeStore
	runLog    *mocks.MockRunLogStore
	txManager *mocks.MockTransactionManager

	service *DeputeSyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *DeputeSyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.deputes = mocks.NewMockDeputeStore(s.ctrl)
	s.organes = mocks.NewMockOrganeStore(s.ctrl)
	s.runLog = mocks.NewMockRunLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.cfg = config.SyncConfig{Legislature: 17}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDeputeSyncService(
		s.source,
		s.deputes,
		s.organes,
		s.runLog,
		s.txManager,
		s.logger,
		s.cfg,
	)
}

func (s *DeputeSyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDeputeSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeputeSyncServiceTestSuite))
}

func (s *DeputeSyncServiceTestSuite) expectRunSuccess(ctx context.Context) {
	id := uuid.New()
	s.runLog.EXPECT().Start(ctx, jobSyncDeputes, domain.TriggerManual).
		Return(&domain.IngestionLog{ID: id, JobName: jobSyncDeputes, Status: domain.RunStatusRunning}, nil)
	s.runLog.EXPECT().Finish(ctx, id, domain.RunStatusSuccess, gomock.Any(), nil).Return(nil)
}

func testActeur() opendata.Acteur {
	civ := "Mme"
	start := time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC)
	return opendata.Acteur{
		Ref:       "PA842279",
		FirstName: "Jeanne",
		LastName:  "Martin",
		Civ:       &civ,
		Mandats: []domain.Mandat{
			{
				OrganeType:   "ASSEMBLEE",
				OrganeRef:    "PO800000",
				ElectionDept: "Paris",
				ElectionNum:  "75",
				NumCirco:     "5",
				Start:        &start,
			},
			{
				OrganeType: "GP",
				OrganeRef:  "PO800490",
				Start:      &start,
			},
			{
				OrganeType: "COMPER",
				OrganeRef:  "PO59048",
				Start:      &start,
			},
		},
	}
}

func (s *DeputeSyncServiceTestSuite) TestSync_UpsertsOrganesThenDeputes() {
	ctx := context.Background()
	short := "Dem"

	organes := []domain.Organe{
		{Ref: "PO800490", Label: "Groupe Démocrate", ShortLabel: &short, TypeCode: "GP"},
		{Ref: "PO59048", Label: "Commission des lois", TypeCode: "COMPER"},
	}
	acteurs := []opendata.Acteur{testActeur()}

	s.expectRunSuccess(ctx)

	s.source.EXPECT().FetchOrganes(ctx, 17).Return(organes, nil)
	s.source.EXPECT().FetchActeurs(ctx, 17).Return(acteurs, nil)

	s.organes.EXPECT().Upsert(ctx, &organes[0]).Return(nil)
	s.organes.EXPECT().Upsert(ctx, &organes[1]).Return(nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	s.deputes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.Depute) error {
			s.Equal("PA842279", d.Ref)
			s.Equal("Jeanne", d.FirstName)
			s.Equal(17, d.Legislature)
			s.Require().NotNil(d.GroupeLabel)
			s.Equal("Dem", *d.GroupeLabel)
			s.Require().NotNil(d.CirconscriptionID)
			s.Equal("7505", *d.CirconscriptionID)
			return nil
		},
	)

	// only the COMPER mandate survives the membership filter
	s.organes.EXPECT().ReplaceMemberships(ctx, "PA842279", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, memberships []domain.DeputeOrgane) error {
			s.Require().Len(memberships, 1)
			s.Equal("PO59048", memberships[0].OrganeRef)
			return nil
		},
	)

	stats, err := s.service.Sync(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, stats.Deputes)
	s.Equal(2, stats.Organes)
	s.Equal(1, stats.Memberships)
	s.Equal(0, stats.Errors)
}

func (s *DeputeSyncServiceTestSuite) TestSync_DryRun() {
	ctx := context.Background()

	s.expectRunSuccess(ctx)

	s.source.EXPECT().FetchOrganes(ctx, 17).Return([]domain.Organe{{Ref: "PO800490"}}, nil)
	s.source.EXPECT().FetchActeurs(ctx, 17).Return([]opendata.Acteur{testActeur()}, nil)

	stats, err := s.service.Sync(ctx, RunOptions{DryRun: true})

	s.NoError(err)
	s.Equal(1, stats.Deputes)
	s.Equal(1, stats.Organes)
	s.Equal(1, stats.Memberships)
}

func (s *DeputeSyncServiceTestSuite) TestSync_OrganeFetchError() {
	ctx := context.Background()
	id := uuid.New()

	s.runLog.EXPECT().Start(ctx, jobSyncDeputes, domain.TriggerManual).
		Return(&domain.IngestionLog{ID: id}, nil)
	s.runLog.EXPECT().Finish(ctx, id, domain.RunStatusError, nil, gomock.Any()).Return(nil)

	s.source.EXPECT().FetchOrganes(ctx, 17).Return(nil, errors.New("archive unavailable"))

	stats, err := s.service.Sync(ctx, RunOptions{})

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "fetch organes")
}

func (s *DeputeSyncServiceTestSuite) TestSync_DeputeSaveFailureContinues() {
	ctx := context.Background()

	a := testActeur()
	b := testActeur()
	b.Ref = "PA1234"

	s.expectRunSuccess(ctx)

	s.source.EXPECT().FetchOrganes(ctx, 17).Return(nil, nil)
	s.source.EXPECT().FetchActeurs(ctx, 17).Return([]opendata.Acteur{a, b}, nil)

	gomock.InOrder(
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("constraint violation")),
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		),
	)
	s.deputes.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.organes.EXPECT().ReplaceMemberships(ctx, "PA1234", gomock.Any()).Return(nil)

	stats, err := s.service.Sync(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, stats.Deputes)
	s.Equal(1, stats.Errors)
}
