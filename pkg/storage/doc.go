// Package storage persists mind map snapshots as a single key/value blob.
//
// A [Backend] is a minimal byte store. Implementations:
//
//   - [FileBackend]: one JSON file per key under a data directory (default)
//   - [SQLiteBackend]: a kv table in a local SQLite database (modernc.org/sqlite, no cgo)
//   - [RedisBackend]: one Redis string per key
//   - [MongoBackend]: one document per key
//   - [MemoryBackend]: process-local map, for tests and dry runs
//   - [NullBackend]: stores nothing
//
// [SnapshotStore] adapts a Backend to the mindmap.Persister interface. It
// encodes snapshots as JSON, optionally compressed with zstd. Compression is
// detected from the stored bytes on read, so toggling it never strands data.
//
// Use [Open] to build a backend from [Options], typically produced by the
// config package.
package storage
