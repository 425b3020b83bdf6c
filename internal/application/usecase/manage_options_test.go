package usecase_test

import (
	"errors"
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

func TestOptionsManager_LoadDefaults(t *testing.T) {
	ctx := testContext()
	om := usecase.NewOptionsManager(memory.NewKeyValueStore())

	opts, err := om.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Options{Theme: entity.ThemeLight, Indent: 2}, opts)
}

func TestOptionsManager_SaveThenLoad(t *testing.T) {
	ctx := testContext()
	om := usecase.NewOptionsManager(memory.NewKeyValueStore())

	saved, err := om.Save(ctx, entity.Options{Theme: entity.ThemeDark, Indent: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, saved.Indent)

	opts, err := om.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Options{Theme: entity.ThemeDark, Indent: 4}, opts)
}

func TestOptionsManager_SaveCoercesIndent(t *testing.T) {
	ctx := testContext()
	om := usecase.NewOptionsManager(memory.NewKeyValueStore())

	saved, err := om.Save(ctx, entity.Options{Indent: -3})
	require.NoError(t, err)
	assert.Equal(t, entity.Options{Theme: entity.ThemeLight, Indent: 2}, saved)

	saved, err = om.Save(ctx, entity.Options{Theme: "solarized", Indent: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Indent)

	opts, err := om.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Theme("solarized"), opts.Theme)
	assert.Equal(t, entity.ThemeLight, opts.EffectiveTheme())
}

func TestOptionsManager_LoadCoercesStoredValues(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	require.NoError(t, store.Set(ctx, port.ScopeSync, entity.OptionsIndentKey, []byte(`"4spaces"`)))
	require.NoError(t, store.Set(ctx, port.ScopeSync, entity.OptionsThemeKey, []byte(`7`)))

	opts, err := usecase.NewOptionsManager(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Indent)
	assert.Equal(t, entity.ThemeLight, opts.Theme)
}

func TestOptionsManager_StorageFailure(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, port.ScopeSync, entity.OptionsThemeKey).Return(nil, false, errors.New("locked"))

	opts, err := usecase.NewOptionsManager(store).Load(ctx)
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
	assert.Equal(t, entity.DefaultOptions(), opts)
}

func TestOptionsManager_ResetDeletesKeys(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()
	om := usecase.NewOptionsManager(store)

	_, err := om.Save(ctx, entity.Options{Theme: entity.ThemeDark, Indent: 7})
	require.NoError(t, err)

	opts, err := om.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultOptions(), opts)

	for _, key := range []string{entity.OptionsThemeKey, entity.OptionsIndentKey} {
		_, found, err := store.Get(ctx, port.ScopeSync, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}

	loaded, err := om.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultOptions(), loaded)
}

func TestOptionsManager_ResetStorageFailure(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockKeyValueStore(t)
	store.EXPECT().Delete(mock.Anything, port.ScopeSync, entity.OptionsThemeKey).Return(errors.New("read-only"))

	_, err := usecase.NewOptionsManager(store).Reset(ctx)
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
}
