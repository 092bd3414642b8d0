package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// templeCatalog is the static set of bookable services. Priced in cents to
// avoid floating point money.
var templeCatalog = []*entity.TempleService{
	{
		ID:          "pooja-navagraha",
		Kind:        entity.ServicePooja,
		Name:        "Navagraha Shanti Pooja",
		Description: "Pacification ritual for all nine planetary lords, recommended during difficult dasha periods.",
		Duration:    90 * time.Minute,
		PriceCents:  510000,
	},
	{
		ID:          "pooja-satyanarayan",
		Kind:        entity.ServicePooja,
		Name:        "Satyanarayan Pooja",
		Description: "Gratitude ritual traditionally performed on purnima, suited to new beginnings.",
		Duration:    2 * time.Hour,
		PriceCents:  310000,
	},
	{
		ID:          "havan-mrityunjaya",
		Kind:        entity.ServiceHavan,
		Name:        "Maha Mrityunjaya Havan",
		Description: "Fire ceremony with 1008 recitations, performed for health and protection.",
		Duration:    3 * time.Hour,
		PriceCents:  1100000,
	},
	{
		ID:          "consult-jyotish",
		Kind:        entity.ServiceConsultation,
		Name:        "Jyotish Consultation",
		Description: "One-on-one chart reading with a resident astrologer covering dashas, transits, and remedies.",
		Duration:    45 * time.Minute,
		PriceCents:  150000,
	},
	{
		ID:          "consult-muhurta",
		Kind:        entity.ServiceConsultation,
		Name:        "Muhurta Selection",
		Description: "Electional consultation to pick an auspicious date and time for a planned event.",
		Duration:    30 * time.Minute,
		PriceCents:  90000,
	},
}

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo   repository.BookingRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:   bookingRepo,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices returns the bookable service catalog.
func (srv *bookingService) ListServices(_ context.Context) ([]*entity.TempleService, error) {
	services := make([]*entity.TempleService, len(templeCatalog))
	copy(services, templeCatalog)

	return services, nil
}

// CreateBooking reserves a future slot and returns the confirmed booking.
func (srv *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if findService(input.ServiceID) == nil {
		return nil, domainerrors.ErrServiceNotFound
	}
	if strings.TrimSpace(input.Sankalp) == "" {
		return nil, domainerrors.ErrSankalpRequired
	}
	if !input.Slot.After(time.Now()) {
		return nil, domainerrors.ErrSlotInPast
	}

	code, err := confirmationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation code")
	}

	booking := &entity.Booking{
		UserID:           userID,
		ServiceID:        input.ServiceID,
		Slot:             input.Slot,
		Sankalp:          strings.TrimSpace(input.Sankalp),
		Notes:            strings.TrimSpace(input.Notes),
		Status:           entity.BookingConfirmed,
		ConfirmationCode: code,
	}

	if err := srv.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Any("bookingID", booking.ID),
		slog.String("serviceID", booking.ServiceID),
		slog.Time("slot", booking.Slot))

	return booking, nil
}

// ListBookings returns the user's bookings ordered by slot time.
func (srv *bookingService) ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// CancelBooking cancels a confirmed booking.
func (srv *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.findOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Cancellable() {
		return nil, domainerrors.ErrBookingNotCancellable
	}

	if err := srv.bookingRepo.UpdateBookingStatus(ctx, bookingID, entity.BookingCancelled); err != nil {
		return nil, errors.Wrap(err, "failed to cancel booking")
	}

	booking.Status = entity.BookingCancelled

	srv.log(ctx).Info("Booking cancelled", slog.Any("bookingID", bookingID))

	return booking, nil
}

// BookingPass renders the booking's confirmation code as a QR PNG.
func (srv *bookingService) BookingPass(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error) {
	booking, err := srv.findOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateBookingQR(booking.ConfirmationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render booking pass")
	}

	return png, nil
}

func (srv *bookingService) findOwned(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking.UserID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return booking, nil
}

func findService(serviceID string) *entity.TempleService {
	for _, svc := range templeCatalog {
		if svc.ID == serviceID {
			return svc
		}
	}

	return nil
}

// confirmationCodeAlphabet omits easily confused characters.
const confirmationCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func confirmationCode() (string, error) {
	var b strings.Builder
	b.WriteString("ASTRO-")

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(confirmationCodeAlphabet[n.Int64()])
	}

	return b.String(), nil
}
