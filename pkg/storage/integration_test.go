//go:build integration

package storage

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("MINDMAP_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := NewRedisBackend(ctx, RedisOptions{Addr: addr})
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	defer b.Close()
	backendContract(t, b)
}

func TestMongoBackend(t *testing.T) {
	uri := os.Getenv("MINDMAP_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := NewMongoBackend(ctx, MongoOptions{URI: uri, Database: "mindmap_test", Collection: "maps"})
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	defer b.Close()
	backendContract(t, b)
}
