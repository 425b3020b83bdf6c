package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/infrastructure/persistence/memory"
	"github.com/bnema/jsonpeek/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// steppingClock returns a time source that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func storedHistory(t *testing.T, store *memory.KeyValueStore) []any {
	t.Helper()
	raw, found, err := store.Get(context.Background(), port.ScopeLocal, entity.HistoryKey)
	require.NoError(t, err)
	require.True(t, found)
	var items []any
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func seedHistory(t *testing.T, store *memory.KeyValueStore, raw string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), port.ScopeLocal, entity.HistoryKey, []byte(raw)))
}
