package main

import (
	"context"
	"log/slog"
	"os"

	"hearth/config"
	"hearth/internal/delivery"
	"hearth/internal/delivery/http"
	"hearth/internal/delivery/http/middleware"
	"hearth/internal/delivery/http/router/handler"
	"hearth/internal/infra/auth"
	logs "hearth/internal/infra/log"
	"hearth/internal/infra/persistence/postgres"
	"hearth/internal/infra/qrcode"
	"hearth/internal/usecase"
	"hearth/internal/usecase/impl"

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
			ensureFirstSuperuser,
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
			postgres.NewHouseholdRepository,
			postgres.NewInvitationRepository,
			postgres.NewCategoryRepository,
			postgres.NewTransactionRepository,
			postgres.NewBudgetRepository,
			postgres.NewEventRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewHouseholdService,
			impl.NewFinanceService,
			impl.NewCalendarService,
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
			handler.NewUserHandler,
			handler.NewHouseholdHandler,
			handler.NewFinanceHandler,
			handler.NewCalendarHandler,
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

// ensureFirstSuperuser seeds the configured bootstrap admin before the
// server starts accepting requests.
func ensureFirstSuperuser(ctx context.Context, userUC usecase.UserUsecase) error {
	return userUC.EnsureFirstSuperuser(ctx)
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
