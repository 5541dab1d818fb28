package main

import (
	"context"
	"log/slog"
	"os"

	"qualifica/config"
	"qualifica/internal/delivery"
	"qualifica/internal/delivery/http"
	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/router/handler"
	"qualifica/internal/infra/auth"
	logs "qualifica/internal/infra/log"
	"qualifica/internal/infra/persistence/postgres"
	"qualifica/internal/infra/storage"
	"qualifica/internal/usecase"
	"qualifica/internal/usecase/impl"

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
			bootstrapSuperAdmin,
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
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSellerRepository,
			postgres.NewGroupRepository,
			postgres.NewAdminRepository,
			postgres.NewRatingRepository,
			postgres.NewBannerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAccessGuard,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSellerService,
			impl.NewRatingService,
			impl.NewReputationService,
			impl.NewGroupService,
			impl.NewAdminService,
			impl.NewBannerService,
			impl.NewMediaService,
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
			handler.NewSellerHandler,
			handler.NewRatingHandler,
			handler.NewGroupHandler,
			handler.NewAdminHandler,
			handler.NewBannerHandler,
			handler.NewUploadHandler,
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

// bootstrapSuperAdmin provisions the initial SUPER_ADMIN account on startup.
// Idempotent, so it runs on every boot.
func bootstrapSuperAdmin(lc fx.Lifecycle, cfg *config.Config, adminUC usecase.AdminUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Bootstrap == nil {
				return nil
			}

			if err := adminUC.Bootstrap(ctx,
				cfg.Bootstrap.SuperAdminName,
				cfg.Bootstrap.SuperAdminEmail,
				cfg.Bootstrap.SuperAdminPassword,
			); err != nil {
				return err
			}

			logger.Info("Super admin bootstrap checked")

			return nil
		},
	})
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
