package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDiscoverService(t *testing.T, ttl time.Duration) (usecase.DiscoverUsecase, *mockSvc.MockEphemerisService) {
	ephemeris := mockSvc.NewMockEphemerisService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	horoscopes := NewHoroscopeService(mockRepo.NewMockBookmarkRepository(t), logger)
	bookings := NewBookingService(mockRepo.NewMockBookingRepository(t), mockSvc.NewMockQRCodeService(t), logger)
	cfg := &config.Config{Discover: &config.DiscoverConfig{SnapshotTTL: ttl}}

	return NewDiscoverService(ephemeris, horoscopes, bookings, cfg, logger), ephemeris
}

func TestDiscoverService_AssemblesSnapshot(t *testing.T) {
	srv, ephemeris := createTestDiscoverService(t, time.Minute)

	positions := []entity.PlanetPosition{{Planet: entity.Moon, Longitude: 42}}
	aspects := []entity.Aspect{{First: entity.Sun, Second: entity.Moon, Kind: entity.Conjunction}}

	ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return(positions).Once()
	ephemeris.EXPECT().
		AspectsAt(mock.AnythingOfType("time.Time")).
		Return(aspects).Once()

	output, err := srv.Discover(context.Background())

	require.NoError(t, err)
	assert.Equal(t, positions, output.Positions)
	assert.Equal(t, aspects, output.Aspects)
	assert.NotEmpty(t, output.Services)
	assert.False(t, output.GeneratedAt.IsZero())

	require.NotNil(t, output.Featured)
	assert.Equal(t, entity.HoroscopeDaily, output.Featured.Period)
	assert.Equal(t, featuredSign(output.GeneratedAt), output.Featured.Sign)
	assert.NotEmpty(t, output.Featured.Content)
}

func TestDiscoverService_ServesCachedSnapshotWithinTTL(t *testing.T) {
	srv, ephemeris := createTestDiscoverService(t, time.Minute)

	ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{{Planet: entity.Moon, Longitude: 42}}).Once()
	ephemeris.EXPECT().
		AspectsAt(mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	ctx := context.Background()

	first, err := srv.Discover(ctx)
	require.NoError(t, err)

	// The Once() expectations above fail the test if the ephemeris is
	// consulted again for the second call.
	second, err := srv.Discover(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestDiscoverService_RefreshesAfterExpiry(t *testing.T) {
	srv, ephemeris := createTestDiscoverService(t, time.Nanosecond)

	ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return([]entity.PlanetPosition{{Planet: entity.Moon, Longitude: 42}}).Twice()
	ephemeris.EXPECT().
		AspectsAt(mock.AnythingOfType("time.Time")).
		Return(nil).Twice()

	ctx := context.Background()

	first, err := srv.Discover(ctx)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	second, err := srv.Discover(ctx)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}
