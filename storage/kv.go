// Package storage implements the persistence of the portfolio aggregate in
// a local key-value store.
//
// The whole aggregate is stored as one JSON value under a fixed key, Key.
// Several key-value backends are available: plain files (the default), a
// SQLite database and a Redis server.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Key identifies the aggregate in the key-value store: application name and schema version.
const Key = "selftrack_data_v2"

// ErrNotFound is returned by KV.Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names a KV implementation.
type Backend string

const (
	File   Backend = "file"
	SQLite Backend = "sqlite"
	Redis  Backend = "redis"
	Memory Backend = "memory"
)

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case File, SQLite, Redis, Memory:
		return b, nil
	case "":
		return File, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (file, sqlite, redis, memory)", s)
	}
}

// Options selects and configures the backend.
type Options struct {
	Backend Backend
	// Dir is the folder of the file backend.
	Dir string
	// SQLitePath is the database file of the sqlite backend.
	SQLitePath string
	// RedisURL is the redis://... URL of the redis backend.
	RedisURL string
}

// OpenKV opens the key-value store described by opts.
func OpenKV(ctx context.Context, opts Options) (KV, error) {
	switch opts.Backend {
	case File, "":
		return NewFileKV(opts.Dir)
	case SQLite:
		return OpenSQLite(opts.SQLitePath)
	case Redis:
		return OpenRedis(ctx, opts.RedisURL)
	case Memory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// Open opens the portfolio store described by opts.
func Open(ctx context.Context, opts Options) (*Adapter, error) {
	kv, err := OpenKV(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("could not open %s storage: %w", opts.Backend, err)
	}
	return NewAdapter(kv), nil
}
