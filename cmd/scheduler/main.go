package main

import (
	"context"
	"log/slog"
	"os"

	"chime/config"
	"chime/internal/delivery"
	"chime/internal/delivery/scheduler"
	"chime/internal/infra/identity"
	logs "chime/internal/infra/log"
	"chime/internal/infra/notification"
	"chime/internal/infra/persistence/postgres"
	"chime/internal/infra/pubsub"
	"chime/internal/infra/remote"
	"chime/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The scheduler binary is one observer in the claim protocol. Any number of
// instances may run against the same database; the row-lock claim guarantees
// each alarm fires exactly once across all of them.
func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlarmRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewSource,
			remote.NewRemoteStore,
			pubsub.NewEventPublisher,
			notification.NewDevicePermissionProvider,
			notification.NewPermissionGate,
			notification.NewDeliveryTiers,
			notification.NewTieredNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNearestIndex,
			impl.NewSchedulerService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
