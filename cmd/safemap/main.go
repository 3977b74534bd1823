package main

import (
	"context"
	"log/slog"
	"os"

	"safemap/config"
	"safemap/internal/delivery"
	"safemap/internal/delivery/api"
	"safemap/internal/delivery/api/middleware"
	"safemap/internal/delivery/api/router/handler"
	"safemap/internal/domain/service"
	"safemap/internal/domain/submission"
	"safemap/internal/infra/auth"
	"safemap/internal/infra/cache"
	logs "safemap/internal/infra/log"
	"safemap/internal/infra/persistence/postgres"
	"safemap/internal/infra/pubsub"
	"safemap/internal/infra/qrcode"
	"safemap/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewSubmissionRepository,
			postgres.NewPublishedEntityRepository,
			postgres.NewCityRepository,
			postgres.NewUserScoreRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			cache.NewLayerCache,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			submission.NewValidator,
			impl.NewSubmissionService,
			impl.NewModerationService,
			impl.NewMapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMapHandler,
			handler.NewSubmissionHandler,
			handler.NewModerationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
