// Package redis is a redis implementation of cache storage.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/cache"
)

var log = logrus.WithField("layer", "cache").WithField("package", "redis")

// Storage is a cache storage backed by redis.
type Storage struct {
	client *redis.Client
	prefix string
}

var _ cache.Storage = (*Storage)(nil)

// New creates new instance of Storage and checks connection.
func New(ctx context.Context, addr, password string, db int, prefix string) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{
		client: client,
		prefix: prefix,
	}, nil
}

// Get returns cached content. Errors are logged and treated as a miss.
func (s *Storage) Get(ctx context.Context, key string) []byte {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).WithField("key", key).Error("failed to get")
		}
		return nil
	}

	return b
}

// Set stores content. Errors are logged.
func (s *Storage) Set(ctx context.Context, key string, content []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, s.prefix+key, content, ttl).Err(); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to set")
	}
}

// Ping checks redis connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes redis client.
func (s *Storage) Close() error {
	return s.client.Close()
}
