package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/indexadmin/indexadmin/internal/auth"
	"github.com/indexadmin/indexadmin/internal/config"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/server"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/indexadmin/indexadmin/internal/users"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		storage.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		users.Module(),
		passwords.Module(),
		auth.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("index admin starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("index admin shutting down")
					return nil
				},
			})
		}),
	).Run()
}
