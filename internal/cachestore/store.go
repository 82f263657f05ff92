package cachestore

import (
	"context"
	"fmt"
	"path/filepath"
)

// Store is a key to immutable-blob store.
type Store interface {
	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key Key, value []byte) error

	// Close releases the backend.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFS     = "fs"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Open creates the store for backend rooted at root.
func Open(ctx context.Context, backend, root string) (Store, error) {
	switch backend {
	case BackendFS, "":
		return NewFileStore(root), nil
	case BackendBadger:
		return OpenBadgerStore(filepath.Join(root, "badger"))
	case BackendSQLite:
		return OpenSQLiteStore(ctx, filepath.Join(root, "cache.db"))
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
