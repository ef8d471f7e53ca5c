package storage

import (
	"context"
	"errors"
)

// DefaultKey is the key the map is stored under.
const DefaultKey = "mindmap-data"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
	BackendNull   = "null"
)

// Backends lists every backend name accepted by Open.
var Backends = []string{BackendFile, BackendSQLite, BackendRedis, BackendMongo, BackendMemory, BackendNull}

// Sentinel errors.
var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrEmptyKey is returned when a backend is asked for the empty key.
	ErrEmptyKey = errors.New("empty storage key")
)

// Backend stores opaque blobs by key.
type Backend interface {
	// Get returns the blob stored under key. ok is false when nothing is
	// stored.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Name identifies the backend in logs.
	Name() string

	Close() error
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
