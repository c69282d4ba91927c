package ledger

import (
	"context"
	"time"

	"github.com/Decentr-net/quill/internal/cache"
)

// Records are immutable so bodies may be cached for a long time.
const bodyTTL = 24 * time.Hour

type cachedFetcher struct {
	Reader
	s cache.Storage
}

// CachedReader wraps reader with bodies cache. Unresolved bodies are not cached.
func CachedReader(r Reader, s cache.Storage) Reader {
	return cachedFetcher{
		Reader: r,
		s:      s,
	}
}

func (c cachedFetcher) GetData(ctx context.Context, id string) ([]byte, error) {
	key := "body:" + id

	if b := c.s.Get(ctx, key); b != nil {
		return b, nil
	}

	b, err := c.Reader.GetData(ctx, id)
	if err != nil || b == nil {
		return b, err
	}

	c.s.Set(ctx, key, b, bodyTTL)

	return b, nil
}

func (c cachedFetcher) Ping(ctx context.Context) error {
	return Ping(ctx, c.Reader)
}
