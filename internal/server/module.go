package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/indexadmin/indexadmin/internal/server/handlers/auth"
	"github.com/indexadmin/indexadmin/internal/server/handlers/debug"
	"github.com/indexadmin/indexadmin/internal/server/handlers/passwords"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(NewErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(auth.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(passwords.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(debug.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, app *fiber.App) {
					healthHandler.Register(app)

					api := app.Group("/api")
					api.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(api)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
