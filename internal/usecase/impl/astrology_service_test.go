package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type astrologyServiceFixtures struct {
	userRepo  *mockRepo.MockUserRepository
	ephemeris *mockSvc.MockEphemerisService
}

func createTestAstrologyService(t *testing.T) (usecase.AstrologyUsecase, *astrologyServiceFixtures) {
	fx := &astrologyServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		ephemeris: mockSvc.NewMockEphemerisService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAstrologyService(fx.userRepo, fx.ephemeris, logger), fx
}

func timedProfileUser(userID uuid.UUID) *entity.User {
	user := completeProfileUser(userID)
	birthTime := "06:45"
	user.Profile.Birth.Time = &birthTime

	return user
}

func TestAstrologyService_Positions_InvalidZodiac(t *testing.T) {
	srv, _ := createTestAstrologyService(t)

	_, err := srv.Positions(context.Background(), time.Now(), service.Zodiac("draconic"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAstrologyService_Positions_Passthrough(t *testing.T) {
	srv, fx := createTestAstrologyService(t)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	fx.ephemeris.EXPECT().
		PositionsAt(at, service.ZodiacTropical).
		Return([]entity.PlanetPosition{{Planet: entity.Sun, Sign: "Virgo"}})

	positions, err := srv.Positions(context.Background(), at, service.ZodiacTropical)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "Virgo", positions[0].Sign)
}

func TestAstrologyService_BirthChart_Success(t *testing.T) {
	srv, fx := createTestAstrologyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(timedProfileUser(userID), nil)
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{
			{Planet: entity.Sun, Sign: "Pisces", Longitude: 354.2},
			{Planet: entity.Moon, Sign: "Cancer", Longitude: 95.0, Nakshatra: "Pushya", Pada: 2},
		})
	fx.ephemeris.EXPECT().
		Ascendant(mock.AnythingOfType("time.Time"), 13.0827, 80.2707).
		Return("Gemini")

	chart, err := srv.BirthChart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, chart.Positions, 2)
	assert.Equal(t, "Pushya", chart.MoonNakshatra)
	assert.Equal(t, "Gemini", chart.Ascendant)
	assert.False(t, chart.CastAt.IsZero())
}

func TestAstrologyService_BirthChart_ProfileIncomplete(t *testing.T) {
	srv, fx := createTestAstrologyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	_, err := srv.BirthChart(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}

func TestAstrologyService_Dashas_RequiresBirthTime(t *testing.T) {
	srv, fx := createTestAstrologyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)

	_, err := srv.Dashas(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrBirthTimeRequired)
}

func TestAstrologyService_Dashas_Success(t *testing.T) {
	srv, fx := createTestAstrologyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(timedProfileUser(userID), nil)
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return(moonAt(95.0))

	dashas, err := srv.Dashas(ctx, userID)

	require.NoError(t, err)
	require.Len(t, dashas.Timeline, 9)

	// A 1992 birth puts the present inside the 120-year cycle, so a
	// mahadasha and antardasha must be running.
	require.NotNil(t, dashas.CurrentMaha)
	require.NotNil(t, dashas.CurrentAntar)

	// Moon at 95.0 sits 12.5% into Pushya, so Saturn's 19-year opening
	// mahadasha loses 2.375 years and the cycle spans 117.625.
	assert.Equal(t, entity.Saturn, dashas.Timeline[0].Lord)

	end := dashas.Timeline[len(dashas.Timeline)-1].End
	start := dashas.Timeline[0].Start
	years := end.Sub(start).Hours() / 24 / 365.25
	assert.InDelta(t, 117.625, years, 0.01)

	for i := 1; i < len(dashas.Timeline); i++ {
		assert.True(t, dashas.Timeline[i].Start.Equal(dashas.Timeline[i-1].End))
	}
}
