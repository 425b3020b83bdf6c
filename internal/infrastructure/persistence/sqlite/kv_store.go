package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/logging"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE scope = ? AND key = ?`
	setValueQuery = `INSERT INTO kv_store (scope, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteValueQuery = `DELETE FROM kv_store WHERE scope = ? AND key = ?`
)

type kvStore struct {
	lazy *LazyDB
}

// NewKeyValueStore creates a SQLite-backed key-value store.
func NewKeyValueStore(lazy *LazyDB) port.KeyValueStore {
	return &kvStore{lazy: lazy}
}

func (s *kvStore) Get(ctx context.Context, scope port.StorageScope, key string) ([]byte, bool, error) {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, false, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, getValueQuery, string(scope), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, scope port.StorageScope, key string, value []byte) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, setValueQuery, string(scope), key, value); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("scope", string(scope)).
		Str("key", key).
		Int("bytes", len(value)).
		Msg("stored value")
	return nil
}

func (s *kvStore) Delete(ctx context.Context, scope port.StorageScope, key string) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, deleteValueQuery, string(scope), key)
	return err
}
