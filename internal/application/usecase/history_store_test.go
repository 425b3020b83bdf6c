package usecase_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/application/port"
	portmocks "github.com/bnema/jsonpeek/internal/application/port/mocks"
	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/infrastructure/persistence/memory"
)

func TestValidateEntry(t *testing.T) {
	assert.NoError(t, usecase.ValidateEntry(entity.HistoryEntry{Content: `{"a":1}`}))
	assert.NoError(t, usecase.ValidateEntry(entity.HistoryEntry{Content: `42`}))

	err := usecase.ValidateEntry(entity.HistoryEntry{Content: `"x": 5`})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrHistoryEntryCorrupt)
	assert.ErrorIs(t, err, entity.ErrParse)

	var corrupt *entity.CorruptEntryError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, `"x": 5`, corrupt.Content)
}

func TestHistoryStore_AppendThenLoadOne(t *testing.T) {
	ctx := testContext()
	hs := usecase.NewHistoryStore(memory.NewKeyValueStore(), usecase.WithClock(steppingClock()))

	require.NoError(t, hs.Append(ctx, `{"a":1}`))

	entries, err := hs.Load(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `{"a":1}`, entries[0].Content)
	assert.Equal(t, "2024-03-01T12:00:01.000Z", entries[0].Timestamp)
}

func TestHistoryStore_KeepsLastTen(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	hs := usecase.NewHistoryStore(store, usecase.WithClock(steppingClock()))

	for i := 0; i < 11; i++ {
		require.NoError(t, hs.Append(ctx, strconv.Itoa(i)))
	}

	assert.Len(t, storedHistory(t, store), entity.HistoryMaxEntries)

	entries, err := hs.Load(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	assert.Equal(t, "10", entries[0].Content, "newest first")
	assert.Equal(t, "1", entries[9].Content, "oldest entry evicted")
}

func TestHistoryStore_LoadLimitTakesMostRecent(t *testing.T) {
	ctx := testContext()
	hs := usecase.NewHistoryStore(memory.NewKeyValueStore(), usecase.WithClock(steppingClock()))

	for i := 0; i < 7; i++ {
		require.NoError(t, hs.Append(ctx, strconv.Itoa(i)))
	}

	entries, err := hs.Load(ctx, 5)
	require.NoError(t, err)
	var contents []string
	for _, e := range entries {
		contents = append(contents, e.Content)
	}
	assert.Equal(t, []string{"6", "5", "4", "3", "2"}, contents)
}

func TestHistoryStore_InvalidAppendIsDiscarded(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	hs := usecase.NewHistoryStore(store)

	require.NoError(t, hs.Append(ctx, `[1]`))
	require.NoError(t, hs.Append(ctx, `not json`))

	assert.Len(t, storedHistory(t, store), 1)
}

func TestHistoryStore_CorruptSlotLoadsEmptyAndIsRepaired(t *testing.T) {
	for _, raw := range []string{`{"not":"a list"}`, `"text"`, `null`, `garbage`} {
		t.Run(raw, func(t *testing.T) {
			ctx := testContext()
			store := memory.NewKeyValueStore()
			seedHistory(t, store, raw)
			hs := usecase.NewHistoryStore(store)

			entries, err := hs.Load(ctx, 5)
			require.NoError(t, err)
			assert.Empty(t, entries)
			assert.Empty(t, storedHistory(t, store))
		})
	}
}

func TestHistoryStore_AppendOverwritesCorruptSlot(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	seedHistory(t, store, `{"oops":true}`)
	hs := usecase.NewHistoryStore(store)

	require.NoError(t, hs.Append(ctx, `true`))

	items := storedHistory(t, store)
	require.Len(t, items, 1)
	assert.Equal(t, "true", items[0].(map[string]any)["content"])
}

func TestHistoryStore_LoadSkipsInvalidAndReadsLegacy(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	seedHistory(t, store, `[
		"{\"legacy\":true}",
		{"content": "\"x\": 5", "timestamp": "2024-01-01T00:00:00.000Z"},
		42,
		{"content": "[1,2]", "timestamp": "2024-01-02T00:00:00.000Z"}
	]`)
	hs := usecase.NewHistoryStore(store)

	entries, err := hs.Load(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "[1,2]", entries[0].Content)
	assert.Equal(t, `{"legacy":true}`, entries[1].Content)
	assert.Empty(t, entries[1].Timestamp)
}

func TestHistoryStore_LoadReadsNonStringContent(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	seedHistory(t, store, `[
		{"content": {"a": 1, "b": [true, null]}, "timestamp": "2024-01-01T00:00:00.000Z"},
		{"content": [ 1, 2 ]},
		{"content": 7},
		{"content": null},
		{"timestamp": "2024-01-03T00:00:00.000Z"}
	]`)
	hs := usecase.NewHistoryStore(store)

	entries, err := hs.Load(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "7", entries[0].Content)
	assert.Equal(t, "[1,2]", entries[1].Content)
	assert.Equal(t, `{"a":1,"b":[true,null]}`, entries[2].Content)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", entries[2].Timestamp)
}

func TestHistoryStore_AppendCarriesUnknownItems(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	seedHistory(t, store, `[42, "legacy"]`)
	hs := usecase.NewHistoryStore(store)

	require.NoError(t, hs.Append(ctx, `{}`))

	items := storedHistory(t, store)
	require.Len(t, items, 3)
	assert.Equal(t, float64(42), items[0])
	assert.Equal(t, "legacy", items[1])
}

func TestHistoryStore_RepairIfCorrupt(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	hs := usecase.NewHistoryStore(store)

	repaired, err := hs.RepairIfCorrupt(ctx)
	require.NoError(t, err)
	assert.False(t, repaired, "missing slot needs no repair")

	seedHistory(t, store, `{"broken":1}`)
	repaired, err = hs.RepairIfCorrupt(ctx)
	require.NoError(t, err)
	assert.True(t, repaired)

	repaired, err = hs.RepairIfCorrupt(ctx)
	require.NoError(t, err)
	assert.False(t, repaired, "repair is idempotent")
	assert.Empty(t, storedHistory(t, store))
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	hs := usecase.NewHistoryStore(store)

	require.NoError(t, hs.Append(ctx, `1`))
	require.NoError(t, hs.Clear(ctx))
	assert.Empty(t, storedHistory(t, store))
}

func TestHistoryStore_StorageFailures(t *testing.T) {
	ctx := testContext()
	boom := errors.New("disk gone")

	t.Run("read", func(t *testing.T) {
		store := portmocks.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, port.ScopeLocal, entity.HistoryKey).Return(nil, false, boom)
		hs := usecase.NewHistoryStore(store)

		_, err := hs.Load(ctx, 5)
		assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("write", func(t *testing.T) {
		store := portmocks.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, port.ScopeLocal, entity.HistoryKey).Return(nil, false, nil)
		store.EXPECT().Set(mock.Anything, port.ScopeLocal, entity.HistoryKey, mock.Anything).Return(boom)
		hs := usecase.NewHistoryStore(store)

		err := hs.Append(ctx, `{}`)
		var storageErr *entity.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "write history", storageErr.Op)
	})

	t.Run("corrective write failure is only logged", func(t *testing.T) {
		store := portmocks.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, port.ScopeLocal, entity.HistoryKey).Return([]byte(`{}`), true, nil)
		store.EXPECT().Set(mock.Anything, port.ScopeLocal, entity.HistoryKey, []byte("[]")).Return(boom)
		hs := usecase.NewHistoryStore(store)

		entries, err := hs.Load(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
