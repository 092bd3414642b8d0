package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBookingService(t *testing.T) (usecase.BookingUsecase, *mockRepo.MockBookingRepository, *mockSvc.MockQRCodeService) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewBookingService(bookingRepo, qrcodeService, logger), bookingRepo, qrcodeService
}

func TestBookingService_ListServices(t *testing.T) {
	srv, _, _ := createTestBookingService(t)

	services, err := srv.ListServices(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, services)

	kinds := make(map[entity.TempleServiceKind]bool)
	ids := make(map[string]bool)
	for _, svc := range services {
		assert.NotEmpty(t, svc.Name)
		assert.Positive(t, svc.PriceCents)
		assert.Positive(t, svc.Duration)
		assert.False(t, ids[svc.ID], "duplicate service id %s", svc.ID)
		ids[svc.ID] = true
		kinds[svc.Kind] = true
	}

	assert.True(t, kinds[entity.ServicePooja])
	assert.True(t, kinds[entity.ServiceConsultation])
	assert.True(t, kinds[entity.ServiceHavan])
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	srv, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateBookingInput{
		ServiceID: "pooja-navagraha",
		Slot:      time.Now().Add(48 * time.Hour),
		Sankalp:   "For the health of my family",
		Notes:     "Prefer a morning slot",
	}

	bookingRepo.EXPECT().
		CreateBooking(ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(ctx context.Context, booking *entity.Booking) {
			booking.ID = uuid.New()
		}).
		Return(nil)

	booking, err := srv.CreateBooking(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, booking.Status)
	assert.True(t, strings.HasPrefix(booking.ConfirmationCode, "ASTRO-"))
	assert.Len(t, booking.ConfirmationCode, len("ASTRO-")+6)
}

func TestBookingService_CreateBooking_SankalpRequired(t *testing.T) {
	srv, _, _ := createTestBookingService(t)

	input := &usecase.CreateBookingInput{
		ServiceID: "pooja-navagraha",
		Slot:      time.Now().Add(48 * time.Hour),
		Sankalp:   "   ",
	}

	_, err := srv.CreateBooking(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrSankalpRequired)
}

func TestBookingService_CreateBooking_SlotInPast(t *testing.T) {
	srv, _, _ := createTestBookingService(t)

	input := &usecase.CreateBookingInput{
		ServiceID: "pooja-navagraha",
		Slot:      time.Now().Add(-time.Hour),
		Sankalp:   "For success in a new venture",
	}

	_, err := srv.CreateBooking(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrSlotInPast)
}

func TestBookingService_CreateBooking_UnknownService(t *testing.T) {
	srv, _, _ := createTestBookingService(t)

	input := &usecase.CreateBookingInput{
		ServiceID: "pooja-unknown",
		Slot:      time.Now().Add(48 * time.Hour),
		Sankalp:   "For peace",
	}

	_, err := srv.CreateBooking(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestBookingService_CancelBooking_Success(t *testing.T) {
	srv, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, UserID: userID, Status: entity.BookingConfirmed}, nil)
	bookingRepo.EXPECT().
		UpdateBookingStatus(ctx, bookingID, entity.BookingCancelled).
		Return(nil)

	booking, err := srv.CancelBooking(ctx, userID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, booking.Status)
}

func TestBookingService_CancelBooking_NotCancellable(t *testing.T) {
	srv, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, UserID: userID, Status: entity.BookingCancelled}, nil)

	_, err := srv.CancelBooking(ctx, userID, bookingID)

	assert.ErrorIs(t, err, domainerrors.ErrBookingNotCancellable)
}

func TestBookingService_CancelBooking_OwnershipEnforced(t *testing.T) {
	srv, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, UserID: uuid.New(), Status: entity.BookingConfirmed}, nil)

	_, err := srv.CancelBooking(ctx, uuid.New(), bookingID)

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	srv, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(nil, repository.ErrBookingNotFound)

	_, err := srv.CancelBooking(ctx, uuid.New(), bookingID)

	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_BookingPass_RendersQR(t *testing.T) {
	srv, bookingRepo, qrcodeService := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(&entity.Booking{
			ID:               bookingID,
			UserID:           userID,
			Status:           entity.BookingConfirmed,
			ConfirmationCode: "ASTRO-AB23CD",
		}, nil)
	qrcodeService.EXPECT().
		GenerateBookingQR("ASTRO-AB23CD").
		Return([]byte("png-bytes"), nil)

	png, err := srv.BookingPass(ctx, userID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
