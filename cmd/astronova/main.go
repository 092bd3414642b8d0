package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/middleware"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/router/handler"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/auth"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/auth/apple"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/ephemeris"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/geo"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/llm"
	logs "github.com/sankalpsthakur/astronova-sub007/internal/infra/log"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/persistence/postgres"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/qrcode"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewMatchRepository,
			postgres.NewBookmarkRepository,
			postgres.NewChatRepository,
			postgres.NewReportRepository,
			postgres.NewBookingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			apple.NewVerifier,
			ephemeris.New,
			geo.NewGazetteer,
			llm.NewChatModel,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewAstrologyService,
			impl.NewHoroscopeService,
			impl.NewMatchService,
			impl.NewChatService,
			impl.NewReportService,
			impl.NewLocationService,
			impl.NewBookingService,
			impl.NewDiscoverService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAstrologyHandler,
			handler.NewHoroscopeHandler,
			handler.NewMatchHandler,
			handler.NewChatHandler,
			handler.NewReportHandler,
			handler.NewLocationHandler,
			handler.NewBookingHandler,
			handler.NewDiscoverHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
