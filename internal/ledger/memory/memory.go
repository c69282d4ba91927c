// Package memory is a process-local implementation of the ledger.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Decentr-net/quill/internal/ledger"
)

type entry struct {
	record ledger.Record
	body   []byte
}

// Ledger keeps records in memory. Records are never modified or removed.
type Ledger struct {
	*ledger.LocalFunder

	mu      sync.RWMutex
	address string
	clock   *ledger.Clock
	records []entry // ordered by recency descending
	index   map[string]int
}

var _ ledger.Ledger = (*Ledger)(nil)

// Option configures Ledger.
type Option func(l *Ledger)

// WithClock sets clock producing record timestamps.
func WithClock(c *ledger.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithFunder sets funder.
func WithFunder(f *ledger.LocalFunder) Option {
	return func(l *Ledger) {
		l.LocalFunder = f
	}
}

// New creates new instance of Ledger. Records are uploaded on behalf of address.
func New(address string, opts ...Option) *Ledger {
	l := &Ledger{
		LocalFunder: ledger.NewLocalFunder(ledger.Unlimited, 0),
		address:     address,
		clock:       ledger.NewClock(nil),
		index:       map[string]int{},
	}

	for _, o := range opts {
		o(l)
	}

	return l
}

// Upload ...
func (l *Ledger) Upload(_ context.Context, body []byte, tags ledger.Tags) (*ledger.Receipt, error) {
	if body == nil {
		body = []byte{}
	}

	r := ledger.Record{
		ID:        ledger.NewID(body, tags),
		Timestamp: l.clock.Next(),
		Address:   l.address,
		Tags:      append(ledger.Tags(nil), tags...),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := sort.Search(len(l.records), func(i int) bool {
		return ledger.Before(r, l.records[i].record)
	})

	l.records = append(l.records, entry{})
	copy(l.records[i+1:], l.records[i:])
	l.records[i] = entry{record: r, body: append([]byte{}, body...)}

	for j := i; j < len(l.records); j++ {
		l.index[l.records[j].record.ID] = j
	}

	return &ledger.Receipt{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Address:   r.Address,
	}, nil
}

// GetData ...
func (l *Ledger) GetData(_ context.Context, id string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return nil, nil
	}

	return append([]byte{}, l.records[i].body...), nil
}

// Owner ...
func (l *Ledger) Owner(_ context.Context, id string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return "", fmt.Errorf("failed to get record %s: %w", id, ledger.ErrNotFound)
	}

	return l.records[i].record.Address, nil
}

// QueryByIDs ...
func (l *Ledger) QueryByIDs(_ context.Context, ids []string) ([]ledger.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	out := make([]ledger.Record, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if i, ok := l.index[id]; ok {
			out = append(out, l.records[i].record)
		}
	}

	ledger.SortRecords(out)

	return out, nil
}

// QueryByTags ...
func (l *Ledger) QueryByTags(_ context.Context, filters []ledger.TagFilter, limit int) ([]ledger.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.scan(0, filters, limit), nil
}

// QueryPage ...
func (l *Ledger) QueryPage(_ context.Context, filters []ledger.TagFilter, limit int, cursor string) (*ledger.Page, error) {
	from := 0

	l.mu.RLock()
	defer l.mu.RUnlock()

	if cursor != "" {
		after, err := ledger.DecodeCursor(cursor)
		if err != nil {
			return nil, err
		}

		from = sort.Search(len(l.records), func(i int) bool {
			return ledger.Before(after, l.records[i].record)
		})
	}

	records := l.scan(from, filters, limit)

	p := ledger.Page{Edges: make([]ledger.Edge, len(records))}
	for i, v := range records {
		p.Edges[i] = ledger.Edge{Record: v, Cursor: ledger.EncodeCursor(v)}
	}

	return &p, nil
}

// Len returns count of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

func (l *Ledger) scan(from int, filters []ledger.TagFilter, limit int) []ledger.Record {
	var out []ledger.Record

	for _, v := range l.records[from:] {
		if limit > 0 && len(out) == limit {
			break
		}

		if ledger.Match(v.record, filters) {
			out = append(out, v.record)
		}
	}

	return out
}
