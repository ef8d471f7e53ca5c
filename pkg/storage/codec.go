package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// zstdMagic is the frame header every zstd stream starts with.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var (
	encOnce sync.Once
	encoder *zstd.Encoder
	encErr  error

	decOnce sync.Once
	decoder *zstd.Decoder
	decErr  error
)

func zstdEncoder() (*zstd.Encoder, error) {
	encOnce.Do(func() { encoder, encErr = zstd.NewWriter(nil) })
	return encoder, encErr
}

func zstdDecoder() (*zstd.Decoder, error) {
	decOnce.Do(func() { decoder, decErr = zstd.NewReader(nil) })
	return decoder, decErr
}

// IsCompressed reports whether data is a zstd stream.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Compress returns data as a zstd stream.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	return enc.EncodeAll(data, nil), nil
}

// Decompress returns data unchanged unless it is a zstd stream.
func Decompress(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	dec, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing: %w", err)
	}
	return out, nil
}

// EncodeSnapshot serializes s as JSON, compressing it when compress is set.
func EncodeSnapshot(s mindmap.Snapshot, compress bool) ([]byte, error) {
	if s.Nodes == nil {
		s.Nodes = []mindmap.Node{}
	}
	if s.Connections == nil {
		s.Connections = []mindmap.Connection{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if !compress {
		return data, nil
	}
	return Compress(data)
}

// DecodeSnapshot parses a blob written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (mindmap.Snapshot, error) {
	raw, err := Decompress(data)
	if err != nil {
		return mindmap.Snapshot{}, err
	}
	var s mindmap.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return mindmap.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
