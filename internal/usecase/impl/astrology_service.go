package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/jyotish"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// astrologyService implements the AstrologyUsecase interface.
type astrologyService struct {
	userRepo  repository.UserRepository
	ephemeris service.EphemerisService
	logger    *slog.Logger
}

// NewAstrologyService is the constructor for astrologyService.
func NewAstrologyService(
	userRepo repository.UserRepository,
	ephemeris service.EphemerisService,
	logger *slog.Logger,
) usecase.AstrologyUsecase {
	return &astrologyService{
		userRepo:  userRepo,
		ephemeris: ephemeris,
		logger:    logger,
	}
}

func (srv *astrologyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Positions returns planetary positions at an instant.
func (srv *astrologyService) Positions(_ context.Context, at time.Time, zodiac service.Zodiac) ([]entity.PlanetPosition, error) {
	if zodiac != service.ZodiacTropical && zodiac != service.ZodiacSidereal {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("zodiac must be tropical or sidereal")
	}

	return srv.ephemeris.PositionsAt(at, zodiac), nil
}

// Aspects returns the major aspects in effect at an instant.
func (srv *astrologyService) Aspects(_ context.Context, at time.Time) ([]entity.Aspect, error) {
	return srv.ephemeris.AspectsAt(at), nil
}

// BirthChart casts the user's sidereal chart from their stored birth data.
func (srv *astrologyService) BirthChart(ctx context.Context, userID uuid.UUID) (*usecase.ChartOutput, error) {
	profile, err := srv.loadCompleteProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	moment, err := profile.Birth.Moment()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidDate, "failed to resolve birth moment")
	}

	positions := srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal)

	out := &usecase.ChartOutput{
		Positions: positions,
		CastAt:    moment,
	}

	for _, pos := range positions {
		if pos.Planet == entity.Moon {
			out.MoonNakshatra = pos.Nakshatra

			break
		}
	}

	if profile.Birth.HasTime() {
		out.Ascendant = srv.ephemeris.Ascendant(moment, profile.Birth.Latitude, profile.Birth.Longitude)
	}

	srv.log(ctx).Debug("Birth chart cast", slog.Any("userID", userID), slog.Time("moment", moment))

	return out, nil
}

// Dashas computes the user's Vimshottari timeline from the Moon's sidereal
// longitude at birth.
func (srv *astrologyService) Dashas(ctx context.Context, userID uuid.UUID) (*usecase.DashaOutput, error) {
	profile, err := srv.loadCompleteProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Birth.HasTime() {
		return nil, domainerrors.ErrBirthTimeRequired
	}

	moment, err := profile.Birth.Moment()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidDate, "failed to resolve birth moment")
	}

	var moonLon float64
	for _, pos := range srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal) {
		if pos.Planet == entity.Moon {
			moonLon = pos.Longitude

			break
		}
	}

	timeline := jyotish.VimshottariTimeline(moment, moonLon)
	maha, antar := jyotish.CurrentDasha(timeline, time.Now())

	return &usecase.DashaOutput{
		Timeline:     timeline,
		CurrentMaha:  maha,
		CurrentAntar: antar,
	}, nil
}

func (srv *astrologyService) loadCompleteProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Profile.Complete() {
		return nil, domainerrors.ErrProfileIncomplete
	}

	return user.Profile, nil
}
