package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to a remote key-value service speaking the Redis
// protocol. The token is used as the connection password.
func NewRedisStore(cfg KVConfig) (Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: kv url required", ErrStorage)
	}

	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: kv ping failed: %w", ErrStorage, pingErr)
	}

	return &redisStore{
		client: client,
		prefix: cfg.Prefix,
	}, nil
}

func redisOptions(cfg KVConfig) (*redis.Options, error) {
	var opts *redis.Options
	if strings.Contains(cfg.URL, "://") {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid kv url: %w", ErrStorage, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.URL}
	}

	if cfg.Token != "" {
		opts.Password = cfg.Token
	}

	return opts, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get %q: %w", ErrStorage, key, err)
	}

	return raw, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: failed to set %q: %w", ErrStorage, key, err)
	}

	return nil
}

func (s *redisStore) Mode() Mode {
	return ModeKV
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
