package impl

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/cache"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/jyotish"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// horoscopeService implements the HoroscopeUsecase interface. Readings are
// generated deterministically: the same sign, period and date always yield
// the same text, so no horoscope rows need to be stored.
type horoscopeService struct {
	bookmarkRepo repository.BookmarkRepository
	readings     *cache.TTLMap[uint64, *entity.HoroscopeReading]
	logger       *slog.Logger
}

// readingTTL bounds the readings cache; entries expire well before the
// period they describe does, keeping the map small.
const readingTTL = time.Hour

// NewHoroscopeService is the constructor for horoscopeService.
func NewHoroscopeService(
	bookmarkRepo repository.BookmarkRepository,
	logger *slog.Logger,
) usecase.HoroscopeUsecase {
	return &horoscopeService{
		bookmarkRepo: bookmarkRepo,
		readings:     cache.NewTTLMap[uint64, *entity.HoroscopeReading](),
		logger:       logger,
	}
}

func (srv *horoscopeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var horoscopeThemes = []string{
	"a surge of creative momentum",
	"a conversation that shifts your perspective",
	"steady progress on something you started long ago",
	"an unexpected opportunity through a friend",
	"a chance to clear old misunderstandings",
	"renewed focus on home and family",
	"recognition for quiet, consistent work",
	"a pull toward rest and reflection",
}

var horoscopeAdvice = []string{
	"Say yes to the invitation you were about to decline.",
	"Put the difficult conversation first; it is lighter than it looks.",
	"Guard an hour of the day for yourself and spend it slowly.",
	"Write the idea down before the evening takes it.",
	"Let someone help you; it is a gift to them too.",
	"Finish one small thing completely rather than three things halfway.",
	"Trust the slower option.",
	"Reach out to the person you have been thinking about.",
}

var luckyColors = []string{
	"Saffron", "Emerald", "Ivory", "Crimson", "Gold",
	"Turquoise", "Silver", "Indigo",
}

// periodStart normalizes a date to the start of the covered period so every
// day of a week or month maps to the same weekly or monthly reading.
func periodStart(period entity.HoroscopePeriod, date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case entity.HoroscopeWeekly:
		// Weeks start on Monday.
		offset := (int(d.Weekday()) + 6) % 7

		return d.AddDate(0, 0, -offset)
	case entity.HoroscopeMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

func horoscopeSeed(sign string, period entity.HoroscopePeriod, start time.Time) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", strings.ToLower(sign), period, start.Format("2006-01-02"))

	return h.Sum64()
}

func validSign(sign string) bool {
	for _, name := range jyotish.SignNames {
		if strings.EqualFold(name, sign) {
			return true
		}
	}

	return false
}

func canonicalSign(sign string) string {
	for _, name := range jyotish.SignNames {
		if strings.EqualFold(name, sign) {
			return name
		}
	}

	return sign
}

// Horoscope returns the reading for a sign, period and date.
func (srv *horoscopeService) Horoscope(_ context.Context, sign string, period entity.HoroscopePeriod, date time.Time) (*entity.HoroscopeReading, error) {
	if !period.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("period must be daily, weekly or monthly")
	}
	if !validSign(sign) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown zodiac sign")
	}

	sign = canonicalSign(sign)
	start := periodStart(period, date)
	seed := horoscopeSeed(sign, period, start)

	if cached, ok := srv.readings.Get(seed); ok {
		return cached, nil
	}

	theme := horoscopeThemes[seed%uint64(len(horoscopeThemes))]
	advice := horoscopeAdvice[(seed>>8)%uint64(len(horoscopeAdvice))]
	color := luckyColors[(seed>>16)%uint64(len(luckyColors))]
	number := int((seed>>24)%9) + 1

	content := fmt.Sprintf("This %s brings %s for %s. %s",
		periodNoun(period), theme, sign, advice)

	reading := &entity.HoroscopeReading{
		Sign:        sign,
		Period:      period,
		Date:        start,
		Title:       fmt.Sprintf("%s %s horoscope", sign, period),
		Content:     content,
		LuckyColor:  color,
		LuckyNumber: number,
	}
	srv.readings.Put(seed, reading, readingTTL)

	return reading, nil
}

func periodNoun(period entity.HoroscopePeriod) string {
	switch period {
	case entity.HoroscopeWeekly:
		return "week"
	case entity.HoroscopeMonthly:
		return "month"
	default:
		return "day"
	}
}

// CreateBookmark saves a reading for later.
func (srv *horoscopeService) CreateBookmark(ctx context.Context, userID uuid.UUID, input *usecase.BookmarkInput) (*entity.BookmarkedReading, error) {
	if input.Content == "" || input.Sign == "" || !input.Period.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("sign, period and content are required")
	}

	bookmark := &entity.BookmarkedReading{
		UserID:  userID,
		Date:    input.Date,
		Period:  input.Period,
		Sign:    canonicalSign(input.Sign),
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.bookmarkRepo.CreateBookmark(ctx, bookmark); err != nil {
		srv.log(ctx).Error("Failed to create bookmark", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	return bookmark, nil
}

// ListBookmarks returns the user's saved readings, newest first.
func (srv *horoscopeService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.BookmarkedReading, error) {
	bookmarks, err := srv.bookmarkRepo.FindBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// DeleteBookmark removes a saved reading after checking ownership.
func (srv *horoscopeService) DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error {
	bookmark, err := srv.bookmarkRepo.FindBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return domainerrors.ErrBookmarkNotFound
		}

		return errors.Wrap(err, "failed to find bookmark")
	}

	if bookmark.UserID != userID {
		return domainerrors.ErrOwnershipViolation
	}

	if err := srv.bookmarkRepo.DeleteBookmark(ctx, bookmarkID); err != nil {
		return errors.Wrap(err, "failed to delete bookmark")
	}

	return nil
}
