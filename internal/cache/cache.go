// Package cache contains an interface of TTL content storage.
package cache

import (
	"context"
	"time"
)

// Storage stores content by key for a limited time.
// Get returns nil if key is missing or expired.
type Storage interface {
	Get(ctx context.Context, key string) []byte
	Set(ctx context.Context, key string, content []byte, ttl time.Duration)
}
