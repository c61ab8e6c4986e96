package main

import (
	"context"
	"log/slog"
	"os"

	"ipay4u/config"
	"ipay4u/internal/delivery"
	"ipay4u/internal/delivery/api"
	apimiddleware "ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/router/handler"
	"ipay4u/internal/delivery/pruner"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/infra/auth"
	"ipay4u/internal/infra/clock"
	logs "ipay4u/internal/infra/log"
	"ipay4u/internal/infra/metrics"
	"ipay4u/internal/infra/persistence/postgres"
	"ipay4u/internal/infra/persistence/redis"
	"ipay4u/internal/infra/pubsub"
	"ipay4u/internal/infra/qrcode"
	"ipay4u/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		metrics.New,
		metrics.NewRecorder,
		clock.NewSystemClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewPaymentEventRepository,
			postgres.NewTransactionManager,
			newNonceRepository,
		),
	)
}

type nonceRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// newNonceRepository selects the nonce store configured by nonce.store
func newNonceRepository(params nonceRepositoryParams) (repository.NonceRepository, error) {
	if params.Config.Nonce.Store != constants.NonceStoreRedis {
		return postgres.NewNonceRepository(params.DB), nil
	}

	client, err := redis.New(redis.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return redis.NewNonceRepository(client, params.Config), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewHMACSigner,
			auth.NewTokenIssuer,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service; a zero size selects the default
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewReplayGuard,
			impl.NewRequestAuthenticator,
			impl.NewEventIngestor,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewDeviceAuthMiddleware,
			apimiddleware.NewAdminAuthMiddleware,
			apimiddleware.NewRegistrationGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewDeviceHandler,
			handler.NewNotifyHandler,
			handler.NewAdminHandler,
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
			fx.Annotate(
				pruner.New,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
