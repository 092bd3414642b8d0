package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo  repository.UserRepository
	ephemeris service.EphemerisService
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	ephemeris service.EphemerisService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo:  userRepo,
		ephemeris: ephemeris,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user's astrological profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.Profile.Complete() {
		return nil, domainerrors.ErrProfileIncomplete
	}

	return user.Profile, nil
}

// UpdateProfile stores birth data and recomputes the derived signs.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if input.FullName == "" || input.BirthDate.IsZero() || input.Place == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name, birth date and place are required")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	profile := &entity.Profile{
		UserID:   userID,
		FullName: input.FullName,
		Birth: entity.BirthDetails{
			Date:      input.BirthDate,
			Time:      input.BirthTime,
			Place:     input.Place,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Timezone:  input.Timezone,
		},
	}

	srv.deriveSigns(profile)

	if err := srv.userRepo.UpsertProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to upsert profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Debug("Profile updated",
		slog.Any("userID", userID),
		slog.String("sunSign", profile.SunSign),
		slog.String("moonSign", profile.MoonSign))

	return profile, nil
}

// deriveSigns fills SunSign, MoonSign and RisingSign from the birth data.
// The sun sign uses the tropical zodiac that users recognise from western
// horoscopes; moon and rising signs are sidereal. The rising sign needs an
// exact birth time and stays empty without one.
func (srv *profileService) deriveSigns(profile *entity.Profile) {
	moment, err := profile.Birth.Moment()
	if err != nil {
		return
	}

	for _, pos := range srv.ephemeris.PositionsAt(moment, service.ZodiacTropical) {
		if pos.Planet == entity.Sun {
			profile.SunSign = pos.Sign

			break
		}
	}

	for _, pos := range srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal) {
		if pos.Planet == entity.Moon {
			profile.MoonSign = pos.Sign

			break
		}
	}

	if profile.Birth.HasTime() {
		profile.RisingSign = srv.ephemeris.Ascendant(moment, profile.Birth.Latitude, profile.Birth.Longitude)
	}
}
