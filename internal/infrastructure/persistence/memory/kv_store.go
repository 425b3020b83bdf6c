// Package memory provides an in-process key-value store used by --ephemeral
// runs and tests. Nothing is written to disk.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/jsonpeek/internal/application/port"
)

type slot struct {
	scope port.StorageScope
	key   string
}

// KeyValueStore is a thread-safe map-backed implementation of port.KeyValueStore.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[slot][]byte
}

// NewKeyValueStore creates an empty store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{values: make(map[slot][]byte)}
}

func (s *KeyValueStore) Get(_ context.Context, scope port.StorageScope, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[slot{scope, key}]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *KeyValueStore) Set(_ context.Context, scope port.StorageScope, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[slot{scope, key}] = append([]byte(nil), value...)
	return nil
}

func (s *KeyValueStore) Delete(_ context.Context, scope port.StorageScope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, slot{scope, key})
	return nil
}

var _ port.KeyValueStore = (*KeyValueStore)(nil)
