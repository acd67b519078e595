package cache

import (
	"context"
	"time"
)

// NoopStore is the Store used when caching is disabled. It retains
// nothing, so every lookup misses.
type NoopStore struct{}

func NewNoopStore() NoopStore { return NoopStore{} }

func (NoopStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrNotFound
}

func (NoopStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
