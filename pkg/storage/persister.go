package storage

import (
	"context"
	"time"

	"github.com/matzehuels/mindmap/pkg/mindmap"
	"github.com/matzehuels/mindmap/pkg/observability"
)

// SnapshotStore persists a mind map under one key of a Backend.
type SnapshotStore struct {
	backend  Backend
	key      string
	compress bool
}

// SnapshotOption configures a SnapshotStore.
type SnapshotOption func(*SnapshotStore)

// WithKey overrides DefaultKey.
func WithKey(key string) SnapshotOption {
	return func(s *SnapshotStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithCompression enables zstd compression of saved snapshots.
func WithCompression(on bool) SnapshotOption {
	return func(s *SnapshotStore) { s.compress = on }
}

// NewSnapshotStore wraps b.
func NewSnapshotStore(b Backend, opts ...SnapshotOption) *SnapshotStore {
	s := &SnapshotStore{backend: b, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key.
func (s *SnapshotStore) Key() string { return s.key }

// Backend returns the wrapped backend.
func (s *SnapshotStore) Backend() Backend { return s.backend }

// Load reads and decodes the stored snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (snap mindmap.Snapshot, found bool, err error) {
	start := time.Now()
	defer func() {
		observability.Storage().OnLoad(ctx, s.backend.Name(), found, time.Since(start), err)
	}()

	data, ok, err := s.backend.Get(ctx, s.key)
	if err != nil || !ok {
		return mindmap.Snapshot{}, false, err
	}
	snap, err = DecodeSnapshot(data)
	if err != nil {
		return mindmap.Snapshot{}, false, err
	}
	return snap, true, nil
}

// Save encodes and writes snap.
func (s *SnapshotStore) Save(ctx context.Context, snap mindmap.Snapshot) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		observability.Storage().OnSave(ctx, s.backend.Name(), size, time.Since(start), err)
	}()

	data, err := EncodeSnapshot(snap, s.compress)
	if err != nil {
		return err
	}
	size = len(data)
	return s.backend.Set(ctx, s.key, data)
}

// Clear removes the stored snapshot.
func (s *SnapshotStore) Clear(ctx context.Context) error {
	err := s.backend.Delete(ctx, s.key)
	observability.Storage().OnClear(ctx, s.backend.Name(), err)
	return err
}

// Close closes the backend.
func (s *SnapshotStore) Close() error { return s.backend.Close() }

var _ mindmap.Persister = (*SnapshotStore)(nil)
