package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/metrics"
)

func TestOpen(t *testing.T) {
	tt := []struct {
		name string
		cfg  Config
		err  error
	}{
		{name: "memory", cfg: Config{Ledger: MemoryLedger, Address: "addr"}},
		{name: "memory cached", cfg: Config{Ledger: MemoryLedger, Address: "addr", Cache: MemoryCache}},
		{name: "badger", cfg: Config{Ledger: BadgerLedger, Address: "addr", BadgerDir: t.TempDir()}},
		{name: "unknown ledger", cfg: Config{Ledger: "ipfs"}, err: ErrUnknownKind},
		{name: "unknown cache", cfg: Config{Ledger: MemoryLedger, Cache: "memcached"}, err: ErrUnknownKind},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			m := metrics.New(prometheus.NewRegistry())

			b, err := Open(ctx, tc.cfg, m)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				return
			}
			require.NoError(t, err)
			defer b.Close() // nolint

			rc, err := b.Ledger.Upload(ctx, []byte("body"), ledger.Tags{{Name: "k", Value: "v"}})
			require.NoError(t, err)
			require.Equal(t, "addr", rc.Address)

			for i := 0; i < 2; i++ {
				body, err := b.Ledger.GetData(ctx, rc.ID)
				require.NoError(t, err)
				require.Equal(t, []byte("body"), body)
			}

			calls := 2.0
			if tc.cfg.Cache != "" {
				calls = 1
			}
			require.Equal(t, calls, testutil.ToFloat64(m.Calls.WithLabelValues("get_data", "ok")))

			require.Len(t, b.Pingers, 1)
			require.NoError(t, b.Pingers[0].Ping(ctx))
		})
	}
}

func TestOpen_Funding(t *testing.T) {
	tt := []struct {
		name    string
		balance int64
		funded  uint64
		err     error
	}{
		{name: "exhausted", balance: 10, funded: 10, err: ledger.ErrInsufficientBalance},
		{name: "zero", balance: 0, funded: 0, err: ledger.ErrInsufficientBalance},
		{name: "unlimited", balance: ledger.Unlimited, funded: 1 << 40},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			b, err := Open(context.Background(), Config{Ledger: MemoryLedger, Balance: tc.balance, PricePerByte: 1}, nil)
			require.NoError(t, err)
			defer b.Close() // nolint

			require.NoError(t, b.Ledger.Fund(context.Background(), tc.funded))

			err = b.Ledger.Fund(context.Background(), 1)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}
			require.NoError(t, err)
		})
	}
}
