package main

import (
	"context"
	"log/slog"
	"os"

	"ipay4u/config"
	"ipay4u/internal/delivery"
	"ipay4u/internal/delivery/worker"
	"ipay4u/internal/delivery/worker/handler"
	"ipay4u/internal/domain/service"
	logs "ipay4u/internal/infra/log"
	"ipay4u/internal/infra/notification"

	"go.uber.org/fx"
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
		injectService(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAlertService,
		),
	)
}

// newAlertService sends through Firebase when credentials are configured and
// falls back to logging alerts otherwise
func newAlertService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.AlertService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("Firebase not configured, payment alerts are logged only")

		return notification.NewLogAlertService(logger), nil
	}

	return notification.NewFirebaseAlertService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
