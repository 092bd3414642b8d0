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
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHoroscopeService(t *testing.T) (usecase.HoroscopeUsecase, *mockRepo.MockBookmarkRepository) {
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHoroscopeService(bookmarkRepo, logger), bookmarkRepo
}

func TestHoroscopeService_Horoscope_Deterministic(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	date := time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC)

	first, err := srv.Horoscope(ctx, "Leo", entity.HoroscopeDaily, date)
	require.NoError(t, err)
	second, err := srv.Horoscope(ctx, "Leo", entity.HoroscopeDaily, date)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.LuckyColor, second.LuckyColor)
	assert.Equal(t, first.LuckyNumber, second.LuckyNumber)
}

func TestHoroscopeService_Horoscope_SignCaseInsensitive(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	lower, err := srv.Horoscope(ctx, "leo", entity.HoroscopeDaily, date)
	require.NoError(t, err)
	upper, err := srv.Horoscope(ctx, "LEO", entity.HoroscopeDaily, date)
	require.NoError(t, err)

	assert.Equal(t, "Leo", lower.Sign)
	assert.Equal(t, lower.Content, upper.Content)
}

func TestHoroscopeService_Horoscope_WeeklySharedAcrossWeek(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	// 2024-06-03 is a Monday; Wednesday and Sunday fall in the same week.
	wednesday := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	a, err := srv.Horoscope(ctx, "Aries", entity.HoroscopeWeekly, wednesday)
	require.NoError(t, err)
	b, err := srv.Horoscope(ctx, "Aries", entity.HoroscopeWeekly, sunday)
	require.NoError(t, err)
	c, err := srv.Horoscope(ctx, "Aries", entity.HoroscopeWeekly, nextMonday)
	require.NoError(t, err)

	assert.Equal(t, a.Content, b.Content)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), a.Date)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), c.Date)
}

func TestHoroscopeService_Horoscope_MonthlyNormalizedToMonthStart(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()

	early, err := srv.Horoscope(ctx, "Pisces", entity.HoroscopeMonthly, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	late, err := srv.Horoscope(ctx, "Pisces", entity.HoroscopeMonthly, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), early.Date)
	assert.Equal(t, early.Content, late.Content)
}

func TestHoroscopeService_Horoscope_InvalidInputs(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	_, err := srv.Horoscope(ctx, "Leo", entity.HoroscopePeriod("hourly"), date)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Horoscope(ctx, "Ophiuchus", entity.HoroscopeDaily, date)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHoroscopeService_Horoscope_LuckyNumberRange(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	signs := []string{"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo"}

	for _, sign := range signs {
		reading, err := srv.Horoscope(ctx, sign, entity.HoroscopeDaily, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, reading.LuckyNumber, 1)
		assert.LessOrEqual(t, reading.LuckyNumber, 9)
		assert.NotEmpty(t, reading.LuckyColor)
	}
}

func TestHoroscopeService_CreateBookmark_Success(t *testing.T) {
	srv, bookmarkRepo := createTestHoroscopeService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.BookmarkInput{
		Date:    time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Period:  entity.HoroscopeDaily,
		Sign:    "leo",
		Title:   "Leo daily horoscope",
		Content: "A good day for bold moves.",
	}

	bookmarkRepo.EXPECT().
		CreateBookmark(ctx, mock.AnythingOfType("*entity.BookmarkedReading")).
		Run(func(ctx context.Context, bookmark *entity.BookmarkedReading) {
			assert.Equal(t, userID, bookmark.UserID)
			assert.Equal(t, "Leo", bookmark.Sign)
		}).
		Return(nil)

	bookmark, err := srv.CreateBookmark(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Content, bookmark.Content)
}

func TestHoroscopeService_CreateBookmark_MissingContent(t *testing.T) {
	srv, _ := createTestHoroscopeService(t)

	ctx := context.Background()
	input := &usecase.BookmarkInput{
		Period: entity.HoroscopeDaily,
		Sign:   "Leo",
	}

	_, err := srv.CreateBookmark(ctx, uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHoroscopeService_DeleteBookmark_OwnershipEnforced(t *testing.T) {
	srv, bookmarkRepo := createTestHoroscopeService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	bookmarkRepo.EXPECT().
		FindBookmarkByID(ctx, bookmarkID).
		Return(&entity.BookmarkedReading{ID: bookmarkID, UserID: uuid.New()}, nil)

	err := srv.DeleteBookmark(ctx, uuid.New(), bookmarkID)

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestHoroscopeService_DeleteBookmark_NotFound(t *testing.T) {
	srv, bookmarkRepo := createTestHoroscopeService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	bookmarkRepo.EXPECT().
		FindBookmarkByID(ctx, bookmarkID).
		Return(nil, repository.ErrBookmarkNotFound)

	err := srv.DeleteBookmark(ctx, uuid.New(), bookmarkID)

	assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)
}

func TestHoroscopeService_DeleteBookmark_Success(t *testing.T) {
	srv, bookmarkRepo := createTestHoroscopeService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()

	bookmarkRepo.EXPECT().
		FindBookmarkByID(ctx, bookmarkID).
		Return(&entity.BookmarkedReading{ID: bookmarkID, UserID: userID}, nil)
	bookmarkRepo.EXPECT().DeleteBookmark(ctx, bookmarkID).Return(nil)

	err := srv.DeleteBookmark(ctx, userID, bookmarkID)

	require.NoError(t, err)
}
