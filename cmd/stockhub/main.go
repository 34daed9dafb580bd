package main

import (
	"context"
	"log/slog"
	"os"

	"stockhub/config"
	"stockhub/internal/delivery"
	"stockhub/internal/delivery/http"
	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/router/handler"
	"stockhub/internal/infra/auth"
	"stockhub/internal/infra/crypto"
	logs "stockhub/internal/infra/log"
	"stockhub/internal/infra/mail"
	"stockhub/internal/infra/persistence/postgres"
	"stockhub/internal/infra/persistence/redis"
	"stockhub/internal/infra/pubsub"
	"stockhub/internal/infra/qrcode"
	"stockhub/internal/infra/storage"
	"stockhub/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTenantRepository,
			postgres.NewProductRepository,
			postgres.NewMaintenanceRepository,
			postgres.NewClientRepository,
			postgres.NewTransactionRepository,
			postgres.NewEmployeeRepository,
			postgres.NewTransactionManager,
			redis.NewSignatureStore,
			redis.NewResetTokenStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			crypto.NewAESCipher,
			mail.New,
			storage.New,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewCatalogService,
			impl.NewClientService,
			impl.NewTransactionService,
			impl.NewFileService,
			impl.NewEmployeeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewMaintenanceHandler,
			handler.NewClientHandler,
			handler.NewTransactionHandler,
			handler.NewEmployeeHandler,
			handler.NewFileHandler,
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
