// Package storage provides the key-value persistence port used by the
// variable store, plus file, SQLite and in-memory adapters.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

// KV is a minimal string key-value store. Get reports found=false for a
// missing key instead of returning an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Closer is implemented by adapters that hold open resources.
type Closer interface {
	Close() error
}

// Open constructs the adapter named by backend rooted at dataDir.
func Open(backend, dataDir string) (KV, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(filepath.Join(dataDir, "store"))
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "designvars.db"))
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Close releases kv if the adapter holds resources.
func Close(kv KV) error {
	if c, ok := kv.(Closer); ok {
		return c.Close()
	}
	return nil
}
