package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/joho/godotenv"
)

const (
	envKVURL   = "KV_REST_API_URL"
	envKVToken = "KV_REST_API_TOKEN"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type kvConfig struct {
	URL    string `koanf:"url"`
	Token  string `koanf:"token"`
	Prefix string `koanf:"prefix"`
}

type storageConfig struct {
	DataDir string   `koanf:"data_dir"`
	KV      kvConfig `koanf:"kv"`
}

type authConfig struct {
	Secret   string        `koanf:"secret"`
	Issuer   string        `koanf:"issuer"`
	TokenTTL time.Duration `koanf:"token_ttl"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage storageConfig `koanf:"storage"`
	Auth    authConfig    `koanf:"auth"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Auth: authConfig{
			TokenTTL: 24 * time.Hour,
		},
	}
}

func New() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	// hosted KV credentials take precedence over the config file
	if url, token := os.Getenv(envKVURL), os.Getenv(envKVToken); url != "" && token != "" {
		cfg.Storage.KV.URL = url
		cfg.Storage.KV.Token = token
	}

	if cfg.Auth.Secret == "" {
		return Config{}, fmt.Errorf("failed to load config: auth.secret is required")
	}

	return cfg, nil
}

// StorageMode selects kv when both the URL and the token are known.
func (c Config) StorageMode() storage.Mode {
	if c.Storage.KV.URL != "" && c.Storage.KV.Token != "" {
		return storage.ModeKV
	}

	return storage.ModeFS
}
