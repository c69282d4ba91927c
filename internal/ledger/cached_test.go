package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/cache/memory"
)

type countingReader struct {
	Reader
	calls  int
	bodies map[string][]byte
	err    error
}

func (r *countingReader) GetData(_ context.Context, id string) ([]byte, error) {
	r.calls++
	return r.bodies[id], r.err
}

func (r *countingReader) Ping(context.Context) error {
	return r.err
}

func TestCachedReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inner := &countingReader{bodies: map[string][]byte{"id": []byte("body")}}
	r := CachedReader(inner, memory.NewStorage(ctx))

	for i := 0; i < 3; i++ {
		b, err := r.GetData(ctx, "id")
		require.NoError(t, err)
		require.Equal(t, []byte("body"), b)
	}
	require.Equal(t, 1, inner.calls)

	for i := 0; i < 2; i++ {
		b, err := r.GetData(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, b)
	}
	require.Equal(t, 3, inner.calls)

	require.NoError(t, Ping(ctx, r))
	inner.err = context.DeadlineExceeded
	require.True(t, errors.Is(Ping(ctx, Compose(r, nil)), context.DeadlineExceeded))

	_, err := r.GetData(ctx, "other")
	require.Error(t, err)
}

func TestPing_Unsupported(t *testing.T) {
	require.NoError(t, Ping(context.Background(), struct{}{}))
}
