package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/mindmap/pkg/errors"
)

// backendContract exercises the behavior every Backend must share.
func backendContract(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := b.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := b.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	data, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || string(data) != "two" {
		t.Fatalf("Get = %q, %v, %v", data, ok, err)
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Error("key still present after Delete")
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
	if _, _, err := b.Get(ctx, ""); err == nil {
		t.Error("Get with empty key should fail")
	}
}

func TestFileBackend(t *testing.T) {
	b, err := NewFileBackend(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	backendContract(t, b)
}

func TestFileBackendPath(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.Path(DefaultKey), filepath.Join(dir, "mindmap-data.json"); got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
	if got := b.Path("../escape"); filepath.Dir(got) != dir {
		t.Errorf("Path escaped data dir: %s", got)
	}
}

func TestMemoryBackend(t *testing.T) {
	backendContract(t, NewMemoryBackend())
}

func TestMemoryBackendCopies(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	in := []byte("abc")
	b.Set(ctx, "k", in)
	in[0] = 'x'
	got, _, _ := b.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
}

func TestSQLiteBackend(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "db", "mindmap.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	backendContract(t, b)
}

func TestNullBackend(t *testing.T) {
	ctx := context.Background()
	b := NewNullBackend()
	defer b.Close()

	if err := b.Set(ctx, "k", []byte("v")); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Error("NullBackend should not store data")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{Dir: dir}, BackendFile},
		{"file", Options{Backend: BackendFile, Dir: dir}, BackendFile},
		{"sqlite", Options{Backend: BackendSQLite, SQLitePath: filepath.Join(dir, "m.db")}, BackendSQLite},
		{"memory", Options{Backend: BackendMemory}, BackendMemory},
		{"null", Options{Backend: BackendNull}, BackendNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(ctx, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			defer b.Close()
			if b.Name() != tt.want {
				t.Errorf("Name = %s, want %s", b.Name(), tt.want)
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Options{Backend: "floppy"}); !errors.Is(err, errors.ErrCodeInvalidBackend) {
		t.Errorf("unknown backend err = %v", err)
	}
	if _, err := Open(ctx, Options{Backend: BackendRedis}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("redis without addr err = %v", err)
	}
	if _, err := Open(ctx, Options{Backend: BackendMongo}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("mongo without uri err = %v", err)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DefaultDir(); got != "/tmp/xdg/mindmap" {
		t.Errorf("DefaultDir = %s", got)
	}
}

func TestLocation(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	tests := []struct {
		name string
		opts Options
		key  string
		want string
	}{
		{"file default", Options{}, "", "/tmp/xdg/mindmap/mindmap-data.json"},
		{"file dir", Options{Backend: BackendFile, Dir: "/data"}, "work", "/data/work.json"},
		{"sqlite default", Options{Backend: BackendSQLite}, "k", "/tmp/xdg/mindmap/mindmap.db#k"},
		{"redis", Options{Backend: BackendRedis, Redis: RedisOptions{Addr: "localhost:6379"}}, "k", "redis://localhost:6379/k"},
		{"memory", Options{Backend: BackendMemory}, "k", "memory:k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Location(tt.opts, tt.key); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}
