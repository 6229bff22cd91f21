package bootstrap

import (
	"context"
	"log/slog"

	"household-services/internal/infra/realtime"
	"household-services/internal/usecase"

	"go.uber.org/fx"
)

// RealtimeModule owns the process-wide channel registry. There is exactly one per process
// and it is emptied on shutdown.
var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			realtime.NewDispatcher,
			fx.As(new(usecase.Notifier)),
		),
	),
)

func NewRegistry(lc fx.Lifecycle, logger *slog.Logger) *realtime.Registry {
	registry := realtime.NewRegistry()

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stats := registry.Stats()
			registry.Close()
			logger.Info("Realtime registry closed",
				"connections", stats.Connections,
				"subjects", stats.Subjects)
			return nil
		},
	})

	return registry
}
