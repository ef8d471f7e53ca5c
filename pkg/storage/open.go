package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/mindmap/pkg/errors"
)

// Options selects and configures a backend.
type Options struct {
	Backend string // one of Backends; "" means file

	// Dir is the file backend's data directory. Empty uses DefaultDir.
	Dir string

	// SQLitePath is the database file. Empty uses <DefaultDir>/mindmap.db.
	SQLitePath string

	Redis RedisOptions
	Mongo MongoOptions
}

// DefaultDir returns the data directory, following XDG conventions.
func DefaultDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "mindmap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mindmap")
	}
	return filepath.Join(home, ".local", "share", "mindmap")
}

// DefaultSQLitePath returns the database used by the sqlite backend when no
// path is configured.
func DefaultSQLitePath() string {
	return filepath.Join(DefaultDir(), "mindmap.db")
}

// Location describes where the backend named by opts keeps key, for display.
func Location(opts Options, key string) string {
	if key == "" {
		key = DefaultKey
	}
	switch opts.Backend {
	case "", BackendFile:
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		return filePath(dir, key)
	case BackendSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = DefaultSQLitePath()
		}
		return path + "#" + key
	case BackendRedis:
		return "redis://" + opts.Redis.Addr + "/" + key
	case BackendMongo:
		return opts.Mongo.URI + "#" + key
	default:
		return opts.Backend + ":" + key
	}
}

// Open creates the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Backend {
	case "", BackendFile:
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		b, err := NewFileBackend(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "cannot open data directory")
		}
		return b, nil
	case BackendSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = DefaultSQLitePath()
		}
		b, err := NewSQLiteBackend(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "cannot open sqlite database")
		}
		return b, nil
	case BackendRedis:
		if opts.Redis.Addr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis backend needs storage.redis.addr")
		}
		b, err := NewRedisBackend(ctx, opts.Redis)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "cannot connect to redis")
		}
		return b, nil
	case BackendMongo:
		m := opts.Mongo
		if m.URI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo backend needs storage.mongo.uri")
		}
		if m.Database == "" {
			m.Database = "mindmap"
		}
		if m.Collection == "" {
			m.Collection = "maps"
		}
		b, err := NewMongoBackend(ctx, m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "cannot connect to mongo")
		}
		return b, nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	case BackendNull:
		return NewNullBackend(), nil
	default:
		return nil, errors.Wrap(errors.ErrCodeInvalidBackend, ErrUnknownBackend,
			"unknown storage backend %q", opts.Backend)
	}
}
