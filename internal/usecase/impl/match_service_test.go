package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchServiceFixtures struct {
	userRepo  *mockRepo.MockUserRepository
	matchRepo *mockRepo.MockMatchRepository
	ephemeris *mockSvc.MockEphemerisService
}

func createTestMatchService(t *testing.T) (usecase.MatchUsecase, *matchServiceFixtures) {
	fx := &matchServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		matchRepo: mockRepo.NewMockMatchRepository(t),
		ephemeris: mockSvc.NewMockEphemerisService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMatchService(fx.userRepo, fx.matchRepo, fx.ephemeris, logger), fx
}

func completeProfileUser(userID uuid.UUID) *entity.User {
	return &entity.User{
		ID: userID,
		Profile: &entity.Profile{
			UserID:   userID,
			FullName: "Asha Iyer",
			Birth: entity.BirthDetails{
				Date:      time.Date(1992, 4, 14, 0, 0, 0, 0, time.UTC),
				Place:     "Chennai, India",
				Latitude:  13.0827,
				Longitude: 80.2707,
				Timezone:  "Asia/Kolkata",
			},
		},
	}
}

func moonAt(longitude float64) []entity.PlanetPosition {
	return []entity.PlanetPosition{
		{Planet: entity.Sun, Longitude: 20},
		{Planet: entity.Moon, Longitude: longitude},
	}
}

func TestMatchService_ComputeMatch_Success(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)

	// First call resolves the user's moon, second the partner's.
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return(moonAt(95.0)).Once()
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return(moonAt(212.0)).Once()

	fx.matchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.KundaliMatch")).
		Run(func(ctx context.Context, match *entity.KundaliMatch) {
			match.ID = uuid.New()
		}).
		Return(nil)

	match, err := srv.ComputeMatch(ctx, userID, &usecase.MatchInput{
		PartnerName: "Rohan Mehta",
		BirthDate:   time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC),
		Place:       "Pune, India",
		Latitude:    18.5204,
		Longitude:   73.8567,
		Timezone:    "Asia/Kolkata",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, match.UserID)
	assert.Equal(t, "Rohan Mehta", match.PartnerName)
	assert.Equal(t, match.Kootas.Total(), match.Total)
	assert.GreaterOrEqual(t, match.Total, 0)
	assert.LessOrEqual(t, match.Total, 36)
	assert.NotEmpty(t, match.Verdict)
}

func TestMatchService_ComputeMatch_MissingPartnerName(t *testing.T) {
	srv, _ := createTestMatchService(t)

	_, err := srv.ComputeMatch(context.Background(), uuid.New(), &usecase.MatchInput{
		BirthDate: time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC),
		Timezone:  "Asia/Kolkata",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMatchService_ComputeMatch_ProfileIncomplete(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Profile: &entity.Profile{UserID: userID}}, nil)

	_, err := srv.ComputeMatch(ctx, userID, &usecase.MatchInput{
		PartnerName: "Rohan Mehta",
		BirthDate:   time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC),
		Timezone:    "Asia/Kolkata",
	})

	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}

func TestMatchService_GetMatch_OwnershipEnforced(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()

	fx.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.KundaliMatch{ID: matchID, UserID: uuid.New()}, nil)

	_, err := srv.GetMatch(ctx, uuid.New(), matchID)

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchService_GetMatch_NotFound(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()

	fx.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(nil, repository.ErrMatchNotFound)

	_, err := srv.GetMatch(ctx, uuid.New(), matchID)

	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestMatchService_ListMatches(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.KundaliMatch{
		{ID: uuid.New(), UserID: userID, PartnerName: "Rohan Mehta"},
		{ID: uuid.New(), UserID: userID, PartnerName: "Kiran Rao"},
	}

	fx.matchRepo.EXPECT().FindMatchesByUser(ctx, userID).Return(stored, nil)

	matches, err := srv.ListMatches(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, matches)
}

func TestMatchService_DeleteMatch_Success(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	matchID := uuid.New()

	fx.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.KundaliMatch{ID: matchID, UserID: userID}, nil)
	fx.matchRepo.EXPECT().DeleteMatch(ctx, matchID).Return(nil)

	err := srv.DeleteMatch(ctx, userID, matchID)

	require.NoError(t, err)
}

func TestMatchService_DeleteMatch_OwnershipEnforced(t *testing.T) {
	srv, fx := createTestMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()

	fx.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.KundaliMatch{ID: matchID, UserID: uuid.New()}, nil)

	err := srv.DeleteMatch(ctx, uuid.New(), matchID)

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
