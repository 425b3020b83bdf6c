package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := kvTestCtx()
	dbPath := filepath.Join(t.TempDir(), "jsonpeek.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = lazy.Close() })

	assert.False(t, lazy.IsInitialized())
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "no file before first use")

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'").Scan(&count))
	assert.Equal(t, 1, count, "migrations ran")
}

func TestLazyDB_ConcurrentCallersShareConnection(t *testing.T) {
	ctx := kvTestCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "jsonpeek.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_OpenFailureIsSticky(t *testing.T) {
	ctx := kvTestCtx()
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "jsonpeek.sqlite"))

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_Path(t *testing.T) {
	lazy := sqlite.NewLazyDB("/some/path/jsonpeek.sqlite")
	assert.Equal(t, "/some/path/jsonpeek.sqlite", lazy.Path())
}

func TestLazyDB_DBAfterCloseFails(t *testing.T) {
	ctx := kvTestCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "jsonpeek.sqlite"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())

	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
}
