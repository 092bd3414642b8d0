package postgres

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatch persists a compatibility result.
func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.KundaliMatch) error {
	matchM := fromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt

	return nil
}

// FindMatchByID retrieves a single match.
func (repo *matchRepository) FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.KundaliMatch, error) {
	var matchM model.KundaliMatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return toMatchDomain(&matchM), nil
}

// FindMatchesByUser lists a user's matches, newest first.
func (repo *matchRepository) FindMatchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.KundaliMatch, error) {
	var matchModels []*model.KundaliMatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	matches := make([]*entity.KundaliMatch, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// DeleteMatch removes a stored match.
func (repo *matchRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.KundaliMatchModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete match")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

func toMatchDomain(data *model.KundaliMatchModel) *entity.KundaliMatch {
	return &entity.KundaliMatch{
		ID:          data.ID,
		UserID:      data.UserID,
		PartnerName: data.PartnerName,
		Partner: entity.BirthDetails{
			Date:      data.PartnerBirthDate,
			Time:      data.PartnerBirthTime,
			Place:     data.PartnerPlace,
			Latitude:  data.PartnerLatitude,
			Longitude: data.PartnerLongitude,
			Timezone:  data.PartnerTimezone,
		},
		Total: data.Total,
		Kootas: entity.KootaScores{
			Varna:   data.Varna,
			Vashya:  data.Vashya,
			Tara:    data.Tara,
			Yoni:    data.Yoni,
			Maitri:  data.Maitri,
			Gana:    data.Gana,
			Bhakoot: data.Bhakoot,
			Nadi:    data.Nadi,
		},
		Scores: entity.SubScores{
			Emotional: data.Emotional,
			Mental:    data.Mental,
			Physical:  data.Physical,
			Spiritual: data.Spiritual,
		},
		Verdict:   data.Verdict,
		CreatedAt: data.CreatedAt,
	}
}

func fromMatchDomain(data *entity.KundaliMatch) *model.KundaliMatchModel {
	return &model.KundaliMatchModel{
		ID:               data.ID,
		UserID:           data.UserID,
		PartnerName:      data.PartnerName,
		PartnerBirthDate: data.Partner.Date,
		PartnerBirthTime: data.Partner.Time,
		PartnerPlace:     data.Partner.Place,
		PartnerLatitude:  data.Partner.Latitude,
		PartnerLongitude: data.Partner.Longitude,
		PartnerTimezone:  data.Partner.Timezone,
		Total:            data.Total,
		Varna:            data.Kootas.Varna,
		Vashya:           data.Kootas.Vashya,
		Tara:             data.Kootas.Tara,
		Yoni:             data.Kootas.Yoni,
		Maitri:           data.Kootas.Maitri,
		Gana:             data.Kootas.Gana,
		Bhakoot:          data.Kootas.Bhakoot,
		Nadi:             data.Kootas.Nadi,
		Emotional:        data.Scores.Emotional,
		Mental:           data.Scores.Mental,
		Physical:         data.Scores.Physical,
		Spiritual:        data.Scores.Spiritual,
		Verdict:          data.Verdict,
	}
}
