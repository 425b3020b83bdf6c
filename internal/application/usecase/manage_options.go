package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/logging"
)

// OptionsManager reads and writes display options in the sync scope.
type OptionsManager struct {
	store port.KeyValueStore
}

// NewOptionsManager creates a new options manager.
func NewOptionsManager(store port.KeyValueStore) *OptionsManager {
	return &OptionsManager{store: store}
}

// Load returns the stored options with defaults for unset keys.
// On storage failure the defaults are returned along with the error.
func (m *OptionsManager) Load(ctx context.Context) (entity.Options, error) {
	log := logging.FromContext(ctx)
	opts := entity.DefaultOptions()

	theme, found, err := m.store.Get(ctx, port.ScopeSync, entity.OptionsThemeKey)
	if err != nil {
		return entity.DefaultOptions(), &entity.StorageError{Op: "read options", Err: err}
	}
	if found {
		var name string
		if err := json.Unmarshal(theme, &name); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed stored theme")
		} else if name != "" {
			opts.Theme = entity.Theme(name)
		}
	}

	indent, found, err := m.store.Get(ctx, port.ScopeSync, entity.OptionsIndentKey)
	if err != nil {
		return entity.DefaultOptions(), &entity.StorageError{Op: "read options", Err: err}
	}
	if found {
		var v any
		if err := json.Unmarshal(indent, &v); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed stored indent")
		} else {
			opts.Indent = entity.CoerceIndent(v)
		}
	}

	return opts, nil
}

// Save normalises and stores the options. It returns what was written.
func (m *OptionsManager) Save(ctx context.Context, opts entity.Options) (entity.Options, error) {
	if opts.Theme == "" {
		opts.Theme = entity.ThemeLight
	}
	opts.Indent = entity.CoerceIndent(opts.Indent)

	theme, err := json.Marshal(string(opts.Theme))
	if err != nil {
		return opts, fmt.Errorf("failed to encode theme: %w", err)
	}
	indent, err := json.Marshal(opts.Indent)
	if err != nil {
		return opts, fmt.Errorf("failed to encode indent: %w", err)
	}

	if err := m.store.Set(ctx, port.ScopeSync, entity.OptionsThemeKey, theme); err != nil {
		return opts, &entity.StorageError{Op: "write options", Err: err}
	}
	if err := m.store.Set(ctx, port.ScopeSync, entity.OptionsIndentKey, indent); err != nil {
		return opts, &entity.StorageError{Op: "write options", Err: err}
	}

	logging.FromContext(ctx).Info().
		Str("theme", string(opts.Theme)).
		Int("indent", opts.Indent).
		Msg("options saved")
	return opts, nil
}

// Reset removes both stored keys, so Load falls back to the defaults.
func (m *OptionsManager) Reset(ctx context.Context) (entity.Options, error) {
	for _, key := range []string{entity.OptionsThemeKey, entity.OptionsIndentKey} {
		if err := m.store.Delete(ctx, port.ScopeSync, key); err != nil {
			return entity.DefaultOptions(), &entity.StorageError{Op: "reset options", Err: err}
		}
	}
	logging.FromContext(ctx).Info().Msg("options reset to defaults")
	return entity.DefaultOptions(), nil
}
