package storage

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"storage",
		logger.WithNamedLogger("storage"),
		fx.Provide(New),
		fx.Invoke(func(lc fx.Lifecycle, store Store, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("document store ready", zap.String("mode", string(store.Mode())))
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("closing document store")
					return store.Close()
				},
			})
		}),
	)
}
