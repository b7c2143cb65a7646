package passwords

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"passwords",
		logger.WithNamedLogger("passwords"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
