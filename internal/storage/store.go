package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Store is a flat key-value medium holding one JSON document per key.
type Store interface {
	// Get returns the raw document under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the document under key in a single write.
	Set(ctx context.Context, key string, value []byte) error
	// Mode reports the backing medium.
	Mode() Mode
	Close() error
}

// New opens the backend selected by cfg.Mode.
func New(cfg Config, logger *zap.Logger) (Store, error) {
	switch cfg.Mode {
	case ModeKV:
		return NewRedisStore(cfg.KV)
	case ModeFS, "":
		return NewBadgerStore(cfg.FS, logger.Named("badger"))
	default:
		return nil, fmt.Errorf("unsupported storage mode %q", cfg.Mode)
	}
}

// GetJSON decodes the document under key into T. Missing keys and documents
// that do not decode into T yield fallback; only backend failures are
// returned as errors.
func GetJSON[T any](ctx context.Context, store Store, key string, fallback T) (T, error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	var value T
	if jsonErr := json.Unmarshal(data, &value); jsonErr != nil {
		return fallback, nil //nolint:nilerr //unreadable documents fall back
	}

	return value, nil
}

// SetJSON replaces the document under key with the JSON encoding of value.
func SetJSON[T any](ctx context.Context, store Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}

	return store.Set(ctx, key, data)
}
