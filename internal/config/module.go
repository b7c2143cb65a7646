package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/indexadmin/indexadmin/internal/auth"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/indexadmin/indexadmin/pkg/badgerfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) storage.Config {
			return storage.Config{
				Mode: cfg.StorageMode(),
				FS: badgerfx.Config{
					Dir:      cfg.Storage.DataDir,
					InMemory: false,
				},
				KV: storage.KVConfig{
					URL:    cfg.Storage.KV.URL,
					Token:  cfg.Storage.KV.Token,
					Prefix: cfg.Storage.KV.Prefix,
				},
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey: []byte(cfg.Auth.Secret),
				Issuer:    cfg.Auth.Issuer,
				TokenTTL:  cfg.Auth.TokenTTL,
			}
		}),
	)
}
