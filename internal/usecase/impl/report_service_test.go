package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type reportServiceFixtures struct {
	reportRepo *mockRepo.MockReportRepository
	userRepo   *mockRepo.MockUserRepository
	ephemeris  *mockSvc.MockEphemerisService
	chatModel  *mockSvc.MockChatModel
	lifecycle  *fxtest.Lifecycle
}

func createTestReportService(t *testing.T) (usecase.ReportUsecase, *reportServiceFixtures) {
	fx := &reportServiceFixtures{
		reportRepo: mockRepo.NewMockReportRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		ephemeris:  mockSvc.NewMockEphemerisService(t),
		chatModel:  mockSvc.NewMockChatModel(t),
		lifecycle:  fxtest.NewLifecycle(t),
	}

	srv := NewReportService(ReportServiceParams{
		Lifecycle:  fx.lifecycle,
		ReportRepo: fx.reportRepo,
		UserRepo:   fx.userRepo,
		Ephemeris:  fx.ephemeris,
		ChatModel:  fx.chatModel,
		Config:     &config.Config{Reports: &config.ReportsConfig{QueueSize: 4}},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, fx
}

func TestReportService_RequestReport_ReturnsPending(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			report.ID = uuid.New()
		}).
		Return(nil)

	report, err := srv.RequestReport(ctx, userID, entity.ReportCareer)

	require.NoError(t, err)
	assert.Equal(t, entity.ReportPending, report.Status)
	assert.Equal(t, entity.ReportCareer, report.Type)
	assert.Equal(t, "Career path report for Asha Iyer", report.Title)
	assert.Nil(t, report.GeneratedAt)
}

func TestReportService_RequestReport_InvalidType(t *testing.T) {
	srv, _ := createTestReportService(t)

	_, err := srv.RequestReport(context.Background(), uuid.New(), entity.ReportType("palmistry"))

	assert.ErrorIs(t, err, domainerrors.ErrReportTypeInvalid)
}

func TestReportService_RequestReport_ProfileIncomplete(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Profile: &entity.Profile{UserID: userID}}, nil)

	_, err := srv.RequestReport(ctx, userID, entity.ReportNatal)

	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}

func TestReportService_WorkerGeneratesReport(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	user := completeProfileUser(userID)
	user.Profile.SunSign = "Aries"
	user.Profile.MoonSign = "Cancer"

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			report.ID = reportID
		}).
		Return(nil)

	stored := &entity.DetailedReport{
		ID:     reportID,
		UserID: userID,
		Type:   entity.ReportNatal,
		Status: entity.ReportPending,
	}
	fx.reportRepo.EXPECT().FindReportByID(mock.Anything, reportID).Return(stored, nil)

	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{
			{Planet: entity.Moon, Longitude: 95, Sign: "Cancer", SignDegree: 5, Nakshatra: "Pushya", Pada: 1},
		})
	fx.chatModel.EXPECT().
		Reply(mock.Anything, mock.MatchedBy(func(chartContext string) bool {
			return strings.Contains(chartContext, "Pushya")
		}), mock.Anything, mock.AnythingOfType("string")).
		Return("A gentle Cancer Moon chart that rewards patience.", nil)

	ready := make(chan *entity.DetailedReport, 1)
	fx.reportRepo.EXPECT().
		UpdateReport(mock.Anything, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			if report.Status == entity.ReportReady {
				ready <- report
			}
		}).
		Return(nil)

	fx.lifecycle.RequireStart()
	defer fx.lifecycle.RequireStop()

	_, err := srv.RequestReport(ctx, userID, entity.ReportNatal)
	require.NoError(t, err)

	select {
	case report := <-ready:
		assert.Equal(t, entity.ReportReady, report.Status)
		assert.Equal(t, "A gentle Cancer Moon chart that rewards patience.", report.Summary)
		assert.Contains(t, report.Content, "Planetary positions at birth")
		assert.Contains(t, report.Content, "Pushya")
		require.NotNil(t, report.GeneratedAt)
	case <-time.After(5 * time.Second):
		t.Fatal("report was not generated in time")
	}
}

func TestReportService_ModelFailureFallsBackToChartSummary(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	user := completeProfileUser(userID)
	user.Profile.SunSign = "Aries"
	user.Profile.MoonSign = "Cancer"

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			report.ID = reportID
		}).
		Return(nil)

	stored := &entity.DetailedReport{
		ID:     reportID,
		UserID: userID,
		Type:   entity.ReportNatal,
		Status: entity.ReportPending,
	}
	fx.reportRepo.EXPECT().FindReportByID(mock.Anything, reportID).Return(stored, nil)

	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{
			{Planet: entity.Moon, Longitude: 95, Sign: "Cancer", SignDegree: 5, Nakshatra: "Pushya", Pada: 1},
		})
	fx.chatModel.EXPECT().
		Reply(mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("model unavailable"))

	ready := make(chan *entity.DetailedReport, 1)
	fx.reportRepo.EXPECT().
		UpdateReport(mock.Anything, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			if report.Status == entity.ReportReady {
				ready <- report
			}
		}).
		Return(nil)

	fx.lifecycle.RequireStart()
	defer fx.lifecycle.RequireStop()

	_, err := srv.RequestReport(ctx, userID, entity.ReportNatal)
	require.NoError(t, err)

	select {
	case report := <-ready:
		assert.Equal(t, entity.ReportReady, report.Status)
		assert.Contains(t, report.Summary, "Moon in Cancer")
		assert.Contains(t, report.Summary, "Pushya")
	case <-time.After(5 * time.Second):
		t.Fatal("report was not generated in time")
	}
}

func TestReportService_QueueFullMarksReportFailed(t *testing.T) {
	fx := &reportServiceFixtures{
		reportRepo: mockRepo.NewMockReportRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		ephemeris:  mockSvc.NewMockEphemerisService(t),
		chatModel:  mockSvc.NewMockChatModel(t),
		lifecycle:  fxtest.NewLifecycle(t),
	}

	srv := NewReportService(ReportServiceParams{
		Lifecycle:  fx.lifecycle,
		ReportRepo: fx.reportRepo,
		UserRepo:   fx.userRepo,
		Ephemeris:  fx.ephemeris,
		ChatModel:  fx.chatModel,
		Config:     &config.Config{Reports: &config.ReportsConfig{QueueSize: 1}},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			report.ID = uuid.New()
		}).
		Return(nil)

	// The worker is never started, so the first request occupies the only
	// queue slot and the second overflows.
	first, err := srv.RequestReport(ctx, userID, entity.ReportNatal)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportPending, first.Status)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.DetailedReport")).
		Run(func(ctx context.Context, report *entity.DetailedReport) {
			report.ID = uuid.New()
		}).
		Return(nil)
	fx.reportRepo.EXPECT().
		UpdateReport(ctx, mock.MatchedBy(func(report *entity.DetailedReport) bool {
			return report.Status == entity.ReportFailed
		})).
		Return(nil)

	_, err = srv.RequestReport(ctx, userID, entity.ReportNatal)

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestReportService_GetReport_OwnershipEnforced(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	reportID := uuid.New()

	fx.reportRepo.EXPECT().
		FindReportByID(ctx, reportID).
		Return(&entity.DetailedReport{ID: reportID, UserID: uuid.New()}, nil)

	_, err := srv.GetReport(ctx, uuid.New(), reportID)

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestReportService_GetReport_NotFound(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	reportID := uuid.New()

	fx.reportRepo.EXPECT().
		FindReportByID(ctx, reportID).
		Return(nil, repository.ErrReportNotFound)

	_, err := srv.GetReport(ctx, uuid.New(), reportID)

	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_ListReports(t *testing.T) {
	srv, fx := createTestReportService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.DetailedReport{
		{ID: uuid.New(), UserID: userID, Type: entity.ReportNatal, Status: entity.ReportReady},
		{ID: uuid.New(), UserID: userID, Type: entity.ReportCareer, Status: entity.ReportPending},
	}

	fx.reportRepo.EXPECT().FindReportsByUser(ctx, userID).Return(stored, nil)

	reports, err := srv.ListReports(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, reports)
}
