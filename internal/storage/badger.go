package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/indexadmin/indexadmin/pkg/badgerfx"
	"go.uber.org/zap"
)

const collectionPrefix = "collection:"

type badgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a file-backed store in cfg.Dir.
func NewBadgerStore(cfg badgerfx.Config, logger *zap.Logger) (Store, error) {
	db, err := badgerfx.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: failed to get %q: %w", ErrStorage, key, err)
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("%w: failed to read %q: %w", ErrStorage, key, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *badgerStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to set %q: %w", ErrStorage, key, err)
	}

	return nil
}

func (s *badgerStore) Mode() Mode {
	return ModeFS
}

func (s *badgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close BadgerDB: %w", err)
	}

	return nil
}

func (s *badgerStore) key(name string) []byte {
	return []byte(collectionPrefix + name)
}
