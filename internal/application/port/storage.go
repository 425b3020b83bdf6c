// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (sqlite, terminals, etc.).
package port

import "context"

// StorageScope partitions the key-value store.
type StorageScope string

const (
	// ScopeLocal holds per-device data such as the history list.
	ScopeLocal StorageScope = "local"
	// ScopeSync holds user preferences.
	ScopeSync StorageScope = "sync"
)

// KeyValueStore is the durable key-value persistence boundary.
// Values are JSON documents stored as raw bytes.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key is unset.
	Get(ctx context.Context, scope StorageScope, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, scope StorageScope, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, scope StorageScope, key string) error
}
