package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/jsonpeek/internal/logging"
)

// Watch reloads the config whenever the file changes on disk and hands the
// new values to every OnConfigChange callback. An edit that fails to parse or
// validate is logged and the previous config stays in effect.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("configuration not loaded")
	}

	log := logging.FromContext(ctx).With().Str("component", "config").Logger()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		cfg, err := m.readAll()
		if err == nil {
			err = m.reloadFrom(cfg)
		}
		if err != nil {
			log.Warn().Err(err).Msg("keeping previous config")
			return
		}

		for _, callback := range m.snapshotCallbacks() {
			c := *cfg
			callback(&c)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback run after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// readAll re-reads the file through viper and decodes it.
func (m *Manager) readAll() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}
	return m.unmarshalConfig()
}

// reloadFrom normalises and validates cfg, then makes it current.
func (m *Manager) reloadFrom(cfg *Config) error {
	if err := ensureStoragePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

func (m *Manager) snapshotCallbacks() []func(*Config) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append(([]func(*Config))(nil), m.callbacks...)
}
