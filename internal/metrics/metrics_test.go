package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/ledger/memory"
)

func TestMetrics_Ledger(t *testing.T) {
	ctx := context.Background()
	m := New(prometheus.NewRegistry())
	l := m.Ledger(memory.New("addr", memory.WithFunder(ledger.NewLocalFunder(5, 1))))

	rc, err := l.Upload(ctx, []byte("body"), nil)
	require.NoError(t, err)

	_, err = l.GetData(ctx, rc.ID)
	require.NoError(t, err)
	_, err = l.GetData(ctx, "missing")
	require.NoError(t, err)

	require.NoError(t, l.Fund(ctx, 4))
	require.True(t, errors.Is(l.Fund(ctx, 4), ledger.ErrInsufficientBalance))

	_, err = l.QueryPage(ctx, nil, 1, "!")
	require.Error(t, err)

	require.Equal(t, float64(4), testutil.ToFloat64(m.UploadedBytes))
	require.Equal(t, float64(4), testutil.ToFloat64(m.Funded))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Unresolved))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Calls.WithLabelValues("upload", "ok")))
	require.Equal(t, float64(2), testutil.ToFloat64(m.Calls.WithLabelValues("get_data", "ok")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Calls.WithLabelValues("fund", "error")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Calls.WithLabelValues("query_page", "error")))

	require.NoError(t, ledger.Ping(ctx, m.Reader(l)))
}
