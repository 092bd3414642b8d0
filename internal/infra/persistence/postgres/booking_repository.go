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

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// CreateBooking persists a confirmed booking.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSankalpRequired
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindBookingByID retrieves a single booking.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// FindBookingsByUser lists a user's bookings ordered by slot time.
func (repo *bookingRepository) FindBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// UpdateBookingStatus transitions a booking's lifecycle state.
func (repo *bookingRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:               data.ID,
		UserID:           data.UserID,
		ServiceID:        data.ServiceID,
		Slot:             data.Slot,
		Sankalp:          data.Sankalp,
		Notes:            data.Notes,
		Status:           entity.BookingStatus(data.Status),
		ConfirmationCode: data.ConfirmationCode,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:               data.ID,
		UserID:           data.UserID,
		ServiceID:        data.ServiceID,
		Slot:             data.Slot,
		Sankalp:          data.Sankalp,
		Notes:            data.Notes,
		Status:           string(data.Status),
		ConfirmationCode: data.ConfirmationCode,
	}
}
