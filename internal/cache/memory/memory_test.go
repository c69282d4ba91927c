package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newStorage(func() time.Time { return now })
	ctx := context.Background()

	require.Nil(t, s.Get(ctx, "key"))

	s.Set(ctx, "key", []byte("value"), time.Minute)
	require.Equal(t, []byte("value"), s.Get(ctx, "key"))

	now = now.Add(2 * time.Minute)
	require.Nil(t, s.Get(ctx, "key"))

	s.cleanup()
	require.Empty(t, s.data)
}

func TestStorage_Copies(t *testing.T) {
	s := newStorage(time.Now)
	ctx := context.Background()

	in := []byte("value")
	s.Set(ctx, "key", in, time.Minute)
	in[0] = 'X'

	out := s.Get(ctx, "key")
	require.Equal(t, []byte("value"), out)

	out[0] = 'Y'
	require.Equal(t, []byte("value"), s.Get(ctx, "key"))
}
