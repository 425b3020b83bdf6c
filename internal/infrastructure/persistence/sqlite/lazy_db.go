package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/jsonpeek/internal/logging"
)

// ErrClosed is returned by DB after Close.
var ErrClosed = errors.New("database closed")

// LazyDB opens the database on first use. Commands that never read or
// write storage never create the file. A failed open is remembered, so
// every later call reports the same error without retrying.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	closed bool
}

// NewLazyDB returns a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrClosed
	case l.db != nil:
		return l.db, nil
	case l.err != nil:
		return nil, l.err
	}

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("path", l.path).Msg("database unavailable")
		l.err = fmt.Errorf("database initialization failed: %w", err)
		return nil, l.err
	}
	l.db = db
	return db, nil
}

// Close closes the connection if one was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
