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

// bookmarkRepository implements the repository.BookmarkRepository interface.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{
		db: db,
	}
}

// CreateBookmark persists a reading the user chose to keep.
func (repo *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark *entity.BookmarkedReading) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt

	return nil
}

// FindBookmarksByUser lists a user's bookmarks, newest first.
func (repo *bookmarkRepository) FindBookmarksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookmarkedReading, error) {
	var bookmarkModels []*model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookmarks by user")
	}

	bookmarks := make([]*entity.BookmarkedReading, 0, len(bookmarkModels))
	for _, bookmarkM := range bookmarkModels {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, nil
}

// FindBookmarkByID retrieves a single bookmark.
func (repo *bookmarkRepository) FindBookmarkByID(ctx context.Context, id uuid.UUID) (*entity.BookmarkedReading, error) {
	var bookmarkM model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by ID")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// DeleteBookmark removes a saved reading.
func (repo *bookmarkRepository) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookmarkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

func toBookmarkDomain(data *model.BookmarkModel) *entity.BookmarkedReading {
	return &entity.BookmarkedReading{
		ID:        data.ID,
		UserID:    data.UserID,
		Date:      data.Date,
		Period:    entity.HoroscopePeriod(data.Period),
		Sign:      data.Sign,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromBookmarkDomain(data *entity.BookmarkedReading) *model.BookmarkModel {
	return &model.BookmarkModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Date:    data.Date,
		Period:  string(data.Period),
		Sign:    data.Sign,
		Title:   data.Title,
		Content: data.Content,
	}
}
