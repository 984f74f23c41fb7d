// Package kv provides the storage primitive for the archive: a small set of
// namespaced keys, each holding one serialized collection. Every write
// replaces the full payload of its key; there are no partial writes.
package kv

import (
	"fmt"

	"github.com/pafa-project/pafa/pkg/types"
)

// Store is a namespaced key to payload mapping. Only the archive store should
// touch it directly; all other components go through the archive operations.
type Store interface {
	// Get returns the payload for key. The second return is false when the
	// key has never been written (or was deleted).
	Get(key string) ([]byte, bool, error)

	// Set replaces the payload for key in full.
	Set(key string, value []byte) error

	// Delete removes the key and its payload. Deleting an absent key is not
	// an error.
	Delete(key string) error

	// Close releases backend resources.
	Close() error
}

// Open creates a Store for the configured backend, creating the data
// directory if needed.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendFile:
		return OpenFile(cfg.DataDir)
	case types.BackendSQLite:
		return OpenSQLite(cfg.DataDir)
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}
}
