package impl

import (
	"context"
	"log/slog"

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

// matchService implements the MatchUsecase interface.
type matchService struct {
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
	ephemeris service.EphemerisService
	logger    *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	ephemeris service.EphemerisService,
	logger *slog.Logger,
) usecase.MatchUsecase {
	return &matchService{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		ephemeris: ephemeris,
		logger:    logger,
	}
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ComputeMatch scores the user's chart against the partner's birth data and
// stores the result.
func (srv *matchService) ComputeMatch(ctx context.Context, userID uuid.UUID, input *usecase.MatchInput) (*entity.KundaliMatch, error) {
	if input.PartnerName == "" || input.BirthDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("partner name and birth date are required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Profile.Complete() {
		return nil, domainerrors.ErrProfileIncomplete
	}

	partnerBirth := entity.BirthDetails{
		Date:      input.BirthDate,
		Time:      input.BirthTime,
		Place:     input.Place,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Timezone:  input.Timezone,
	}

	userMoon, err := srv.moonLongitude(user.Profile.Birth)
	if err != nil {
		return nil, err
	}
	partnerMoon, err := srv.moonLongitude(partnerBirth)
	if err != nil {
		return nil, err
	}

	kootas := jyotish.GunaMilan(userMoon, partnerMoon)
	total := kootas.Total()

	match := &entity.KundaliMatch{
		UserID:      userID,
		PartnerName: input.PartnerName,
		Partner:     partnerBirth,
		Total:       total,
		Kootas:      kootas,
		Scores:      jyotish.SubScores(kootas),
		Verdict:     jyotish.Verdict(total),
	}

	if err := srv.matchRepo.CreateMatch(ctx, match); err != nil {
		srv.log(ctx).Error("Failed to store match", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store match")
	}

	srv.log(ctx).Info("Match computed",
		slog.Any("userID", userID),
		slog.Int("total", total),
		slog.String("verdict", match.Verdict))

	return match, nil
}

func (srv *matchService) moonLongitude(birth entity.BirthDetails) (float64, error) {
	moment, err := birth.Moment()
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrInvalidDate, "failed to resolve birth moment")
	}

	for _, pos := range srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal) {
		if pos.Planet == entity.Moon {
			return pos.Longitude, nil
		}
	}

	return 0, errors.New("moon position unavailable")
}

// GetMatch returns a stored match after checking ownership.
func (srv *matchService) GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.KundaliMatch, error) {
	match, err := srv.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, domainerrors.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match")
	}

	if match.UserID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return match, nil
}

// ListMatches returns the user's stored matches, newest first.
func (srv *matchService) ListMatches(ctx context.Context, userID uuid.UUID) ([]*entity.KundaliMatch, error) {
	matches, err := srv.matchRepo.FindMatchesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	return matches, nil
}

// DeleteMatch removes a stored match after checking ownership.
func (srv *matchService) DeleteMatch(ctx context.Context, userID, matchID uuid.UUID) error {
	match, err := srv.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return domainerrors.ErrMatchNotFound
		}

		return errors.Wrap(err, "failed to find match")
	}

	if match.UserID != userID {
		return domainerrors.ErrOwnershipViolation
	}

	if err := srv.matchRepo.DeleteMatch(ctx, matchID); err != nil {
		return errors.Wrap(err, "failed to delete match")
	}

	return nil
}
