package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache with helpers for per-layer query
// results. A nil value with a nil error is a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetQueryResult / SetQueryResult cache a remote layer's intersection
	// answer keyed by endpoint and buffer geometry digest.
	GetQueryResult(ctx context.Context, endpoint, geometryDigest string) ([]byte, error)
	SetQueryResult(ctx context.Context, endpoint, geometryDigest string, data []byte, ttl time.Duration) error
}
