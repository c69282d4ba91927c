package postgres

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
)

func TestBuildQuery(t *testing.T) {
	tt := []struct {
		name    string
		filters []ledger.TagFilter
		after   *ledger.Record
		limit   int
		query   string
		args    []interface{}
	}{
		{
			name:  "all",
			query: `SELECT r.id, r.ts, r.address, r.tags FROM record r ORDER BY r.ts DESC, r.id ASC`,
		},
		{
			name:    "filters",
			filters: []ledger.TagFilter{{Name: "a", Values: []string{"1", "2"}}},
			limit:   10,
			query: `SELECT r.id, r.ts, r.address, r.tags FROM record r WHERE ` +
				`EXISTS (SELECT 1 FROM tag t WHERE t.record_id = r.id AND t.name = $1 AND t.value = ANY($2)) ` +
				`ORDER BY r.ts DESC, r.id ASC LIMIT $3`,
			args: []interface{}{"a", pq.Array([]string{"1", "2"}), 10},
		},
		{
			name:  "after",
			after: &ledger.Record{ID: "id", Timestamp: 5},
			limit: 1,
			query: `SELECT r.id, r.ts, r.address, r.tags FROM record r WHERE ` +
				`(r.ts < $1 OR (r.ts = $1 AND r.id > $2)) ` +
				`ORDER BY r.ts DESC, r.id ASC LIMIT $3`,
			args: []interface{}{int64(5), "id", 1},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			query, args := buildQuery(tc.filters, tc.after, tc.limit)
			require.Equal(t, tc.query, query)
			require.Equal(t, tc.args, args)
		})
	}
}
