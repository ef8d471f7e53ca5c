package storage

import "context"

// NullBackend is a no-op backend that never stores anything.
// Useful for testing or when persistence should be disabled.
type NullBackend struct{}

// NewNullBackend creates a null backend.
func NewNullBackend() Backend {
	return &NullBackend{}
}

// Get always reports nothing stored.
func (b *NullBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (b *NullBackend) Set(ctx context.Context, key string, data []byte) error {
	return nil
}

// Delete does nothing.
func (b *NullBackend) Delete(ctx context.Context, key string) error {
	return nil
}

// Name returns "null".
func (b *NullBackend) Name() string { return BackendNull }

// Close does nothing.
func (b *NullBackend) Close() error {
	return nil
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)
