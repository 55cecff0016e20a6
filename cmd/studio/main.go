package main

import (
	"context"
	"log/slog"
	"os"

	"studio/config"
	"studio/internal/delivery"
	"studio/internal/delivery/api"
	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/router/handler"
	"studio/internal/infra/auth"
	"studio/internal/infra/auth/google"
	"studio/internal/infra/businessprofile"
	"studio/internal/infra/gateway"
	logs "studio/internal/infra/log"
	"studio/internal/infra/metrics"
	"studio/internal/infra/persistence/postgres"
	"studio/internal/infra/pubsub"
	"studio/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		gateway.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewGMBAccountRepository,
			postgres.NewGMBLocationRepository,
			postgres.NewGMBReviewRepository,
			postgres.NewGMBMediaRepository,
			postgres.NewJobLogRepository,
			postgres.NewOAuthStateRepository,
			postgres.NewOAuthTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenCipher,
			auth.NewJWTSessionVerifier,
			google.NewOAuthClient,
			google.NewServiceAccountTokenSource,
			businessprofile.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenProvider,
			impl.NewSyncService,
			impl.NewConnectService,
			impl.NewAccountService,
			impl.NewReviewService,
			impl.NewUserTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSyncHandler,
			handler.NewConnectHandler,
			handler.NewAccountHandler,
			handler.NewReviewHandler,
			handler.NewTokenHandler,
			handler.NewScheduleHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
