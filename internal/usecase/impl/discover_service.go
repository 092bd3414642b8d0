package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/cache"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/jyotish"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// discoverService implements the DiscoverUsecase interface. The assembled
// snapshot is identical for every user, so one cached copy serves all
// requests within the TTL.
type discoverService struct {
	ephemeris  service.EphemerisService
	horoscopes usecase.HoroscopeUsecase
	bookings   usecase.BookingUsecase
	snapshot   *cache.Snapshot[*usecase.DiscoverOutput]
	ttl        time.Duration
	logger     *slog.Logger
}

// NewDiscoverService is the constructor for discoverService.
func NewDiscoverService(
	ephemeris service.EphemerisService,
	horoscopes usecase.HoroscopeUsecase,
	bookings usecase.BookingUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DiscoverUsecase {
	ttl := 10 * time.Minute
	if cfg != nil && cfg.Discover != nil && cfg.Discover.SnapshotTTL > 0 {
		ttl = cfg.Discover.SnapshotTTL
	}

	return &discoverService{
		ephemeris:  ephemeris,
		horoscopes: horoscopes,
		bookings:   bookings,
		snapshot:   cache.NewSnapshot[*usecase.DiscoverOutput](),
		ttl:        ttl,
		logger:     logger,
	}
}

func (srv *discoverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Discover returns the current snapshot, serving a cached copy within its TTL.
func (srv *discoverService) Discover(ctx context.Context) (*usecase.DiscoverOutput, error) {
	if cached, ok := srv.snapshot.Get(); ok {
		return cached, nil
	}

	now := time.Now()

	var (
		positions []entity.PlanetPosition
		aspects   []entity.Aspect
		featured  *entity.HoroscopeReading
		services  []*entity.TempleService
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		positions = srv.ephemeris.PositionsAt(now, service.ZodiacSidereal)

		return nil
	})
	group.Go(func() error {
		aspects = srv.ephemeris.AspectsAt(now)

		return nil
	})
	group.Go(func() error {
		var err error
		featured, err = srv.horoscopes.Horoscope(groupCtx, featuredSign(now), entity.HoroscopeDaily, now)

		return err
	})
	group.Go(func() error {
		var err error
		services, err = srv.bookings.ListServices(groupCtx)

		return err
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to assemble discover snapshot")
	}

	output := &usecase.DiscoverOutput{
		Positions:   positions,
		Aspects:     aspects,
		Featured:    featured,
		Services:    services,
		GeneratedAt: now,
	}
	srv.snapshot.Put(output, srv.ttl)

	srv.log(ctx).Debug("Discover snapshot refreshed", slog.Time("generatedAt", now))

	return output, nil
}

// featuredSign rotates the spotlight through the zodiac, one sign per day.
func featuredSign(now time.Time) string {
	return jyotish.SignNames[now.YearDay()%len(jyotish.SignNames)]
}
