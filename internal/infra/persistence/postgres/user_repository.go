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
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by ID with the profile preloaded.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email with the profile preloaded.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user, including its profile when present.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email": user.Email,
			"name":  user.Name,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpsertProfile creates or replaces a user's astrological profile.
func (repo *userRepository) UpsertProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Profile != nil {
		user.Profile = toProfileDomain(data.Profile)
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
	}

	if data.Profile != nil {
		userM.Profile = fromProfileDomain(data.Profile)
	}

	return userM
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:   data.UserID,
		FullName: data.FullName,
		Birth: entity.BirthDetails{
			Date:      data.BirthDate,
			Time:      data.BirthTime,
			Place:     data.BirthPlace,
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Timezone:  data.Timezone,
		},
		SunSign:            data.SunSign,
		MoonSign:           data.MoonSign,
		RisingSign:         data.RisingSign,
		SubscriptionExpiry: data.SubscriptionExpiry,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:             data.UserID,
		FullName:           data.FullName,
		BirthDate:          data.Birth.Date,
		BirthTime:          data.Birth.Time,
		BirthPlace:         data.Birth.Place,
		Latitude:           data.Birth.Latitude,
		Longitude:          data.Birth.Longitude,
		Timezone:           data.Birth.Timezone,
		SunSign:            data.SunSign,
		MoonSign:           data.MoonSign,
		RisingSign:         data.RisingSign,
		SubscriptionExpiry: data.SubscriptionExpiry,
	}
}
