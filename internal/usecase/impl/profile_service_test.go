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

type profileServiceFixtures struct {
	userRepo  *mockRepo.MockUserRepository
	ephemeris *mockSvc.MockEphemerisService
}

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *profileServiceFixtures) {
	fx := &profileServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		ephemeris: mockSvc.NewMockEphemerisService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProfileService(fx.userRepo, fx.ephemeris, logger), fx
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)

	profile, err := srv.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Asha Iyer", profile.FullName)
	assert.Equal(t, "Chennai, India", profile.Birth.Place)
}

func TestProfileService_GetProfile_Incomplete(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	_, err := srv.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}

func TestProfileService_UpdateProfile_DerivesSigns(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	birthTime := "14:30"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)

	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacTropical).
		Return([]entity.PlanetPosition{{Planet: entity.Sun, Sign: "Aries", Longitude: 24.5}})
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{{Planet: entity.Moon, Sign: "Cancer", Longitude: 95.0}})
	fx.ephemeris.EXPECT().
		Ascendant(mock.AnythingOfType("time.Time"), 13.0827, 80.2707).
		Return("Virgo")

	fx.userRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := srv.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FullName:  "Asha Iyer",
		BirthDate: time.Date(1992, 4, 14, 0, 0, 0, 0, time.UTC),
		BirthTime: &birthTime,
		Place:     "Chennai, India",
		Latitude:  13.0827,
		Longitude: 80.2707,
		Timezone:  "Asia/Kolkata",
	})

	require.NoError(t, err)
	assert.Equal(t, "Aries", profile.SunSign)
	assert.Equal(t, "Cancer", profile.MoonSign)
	assert.Equal(t, "Virgo", profile.RisingSign)
}

func TestProfileService_UpdateProfile_NoBirthTimeSkipsRisingSign(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(completeProfileUser(userID), nil)

	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacTropical).
		Return([]entity.PlanetPosition{{Planet: entity.Sun, Sign: "Aries"}})
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{{Planet: entity.Moon, Sign: "Cancer"}})

	fx.userRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := srv.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FullName:  "Asha Iyer",
		BirthDate: time.Date(1992, 4, 14, 0, 0, 0, 0, time.UTC),
		Place:     "Chennai, India",
		Latitude:  13.0827,
		Longitude: 80.2707,
		Timezone:  "Asia/Kolkata",
	})

	require.NoError(t, err)
	assert.Empty(t, profile.RisingSign)
}

func TestProfileService_UpdateProfile_MissingFields(t *testing.T) {
	srv, _ := createTestProfileService(t)

	_, err := srv.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		FullName: "Asha Iyer",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
