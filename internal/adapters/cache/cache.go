// Package cache keeps upstream rate responses for a while so repeated
// queries for the same window do not hit the provider again.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Store.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

// Store is a byte-oriented TTL store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
