package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	mu  sync.RWMutex
	dir string
}

// NewFileBackend creates a file backend rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the data directory.
func (b *FileBackend) Dir() string { return b.dir }

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string { return filePath(b.dir, key) }

func filePath(dir, key string) string {
	// Keys are flat names; path separators would escape the data dir.
	safe := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(key)
	return filepath.Join(dir, safe+".json")
}

// Get reads the file for key.
func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.Path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the file for key through a temporary file and a rename, so a
// crash never leaves a half-written blob.
func (b *FileBackend) Set(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.Path(key)
	tmp, err := os.CreateTemp(b.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key.
func (b *FileBackend) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.Path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Name returns "file".
func (b *FileBackend) Name() string { return BackendFile }

// Close does nothing for file storage.
func (b *FileBackend) Close() error { return nil }

// Ensure FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)
