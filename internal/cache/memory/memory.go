// Package memory is an in-process implementation of cache storage.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Decentr-net/quill/internal/cache"
)

const cleanupInterval = time.Minute

type item struct {
	content   []byte
	expiresAt time.Time
}

type storage struct {
	mu   sync.RWMutex
	data map[string]item
	now  func() time.Time
}

// NewStorage creates new instance of storage. Expired items are removed until ctx is done.
func NewStorage(ctx context.Context) cache.Storage {
	s := newStorage(time.Now)

	go func() {
		t := time.NewTicker(cleanupInterval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.cleanup()
			}
		}
	}()

	return s
}

func newStorage(now func() time.Time) *storage {
	return &storage{
		data: make(map[string]item),
		now:  now,
	}
}

func (s *storage) Get(_ context.Context, key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok || s.now().After(v.expiresAt) {
		return nil
	}

	return append([]byte(nil), v.content...)
}

func (s *storage) Set(_ context.Context, key string, content []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = item{
		content:   append([]byte(nil), content...),
		expiresAt: s.now().Add(ttl),
	}
}

func (s *storage) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, v := range s.data {
		if now.After(v.expiresAt) {
			delete(s.data, k)
		}
	}
}
