// Package badger is an embedded persistent implementation of the ledger.
package badger

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/ledger"
)

var log = logrus.WithField("layer", "ledger").WithField("package", "badger")

var (
	prefixRecord = []byte("rec/")
	prefixBody   = []byte("body/")
	prefixOrder  = []byte("ord/")
)

// Ledger keeps records in badger database.
//
// Keys:
//
//	rec/{id}           json encoded record
//	body/{id}          zstd compressed body
//	ord/{^ts}{id}      id; iteration order is recency descending
type Ledger struct {
	*ledger.LocalFunder

	db      *badger.DB
	address string
	clock   *ledger.Clock
	enc     *zstd.Encoder
	dec     *zstd.Decoder
}

var _ ledger.Ledger = (*Ledger)(nil)

// Open opens badger database placed in dir. Empty dir opens in-memory database.
func Open(dir, address string, funder *ledger.LocalFunder) (*Ledger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	if funder == nil {
		funder = ledger.NewLocalFunder(ledger.Unlimited, 0)
	}

	l := &Ledger{
		LocalFunder: funder,
		db:          db,
		address:     address,
		clock:       ledger.NewClock(nil),
		enc:         enc,
		dec:         dec,
	}

	if err := l.restoreClock(); err != nil {
		l.Close() // nolint
		return nil, err
	}

	return l, nil
}

// Close closes database.
func (l *Ledger) Close() error {
	l.dec.Close()
	if err := l.enc.Close(); err != nil {
		log.WithError(err).Error("failed to close zstd encoder")
	}

	return l.db.Close()
}

// restoreClock moves clock to the newest stored record.
func (l *Ledger) restoreClock() error {
	return l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek(prefixOrder)
		if it.ValidForPrefix(prefixOrder) {
			ts, _ := parseOrderKey(it.Item().Key())
			l.clock.Observe(ts)
		}

		return nil
	})
}

type recordDTO struct {
	ID        string       `json:"id"`
	Timestamp int64        `json:"timestamp"`
	Address   string       `json:"address"`
	Tags      []ledger.Tag `json:"tags"`
}

func key(prefix []byte, id string) []byte {
	return append(append([]byte{}, prefix...), id...)
}

func orderKey(ts int64, id string) []byte {
	k := make([]byte, len(prefixOrder)+8, len(prefixOrder)+8+len(id))
	copy(k, prefixOrder)
	binary.BigEndian.PutUint64(k[len(prefixOrder):], uint64(math.MaxInt64-ts))

	return append(k, id...)
}

func parseOrderKey(k []byte) (int64, string) {
	k = k[len(prefixOrder):]

	return math.MaxInt64 - int64(binary.BigEndian.Uint64(k[:8])), string(k[8:])
}

// Upload ...
func (l *Ledger) Upload(_ context.Context, body []byte, tags ledger.Tags) (*ledger.Receipt, error) {
	r := recordDTO{
		ID:        ledger.NewID(body, tags),
		Timestamp: l.clock.Next(),
		Address:   l.address,
		Tags:      tags,
	}

	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := l.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(prefixRecord, r.ID), b); err != nil {
			return err
		}

		if err := txn.Set(key(prefixBody, r.ID), l.enc.EncodeAll(body, nil)); err != nil {
			return err
		}

		return txn.Set(orderKey(r.Timestamp, r.ID), []byte(r.ID))
	}); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}

	return &ledger.Receipt{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Address:   r.Address,
	}, nil
}

// GetData ...
func (l *Ledger) GetData(_ context.Context, id string) ([]byte, error) {
	var out []byte

	if err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(prefixBody, id))
		if err != nil {
			return err
		}

		return item.Value(func(v []byte) error {
			b, err := l.dec.DecodeAll(v, nil)
			if err != nil {
				return fmt.Errorf("failed to decompress body: %w", err)
			}

			out = b
			if out == nil {
				out = []byte{}
			}

			return nil
		})
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get body of %s: %w", id, err)
	}

	return out, nil
}

// Owner ...
func (l *Ledger) Owner(_ context.Context, id string) (string, error) {
	var r ledger.Record

	if err := l.db.View(func(txn *badger.Txn) (err error) {
		r, err = getRecord(txn, id)
		return err
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", fmt.Errorf("failed to get record %s: %w", id, ledger.ErrNotFound)
		}

		return "", fmt.Errorf("failed to get record %s: %w", id, err)
	}

	return r.Address, nil
}

// QueryByIDs ...
func (l *Ledger) QueryByIDs(_ context.Context, ids []string) ([]ledger.Record, error) {
	out := make([]ledger.Record, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	if err := l.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			r, err := getRecord(txn, id)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			out = append(out, r)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	ledger.SortRecords(out)

	return out, nil
}

// QueryByTags ...
func (l *Ledger) QueryByTags(_ context.Context, filters []ledger.TagFilter, limit int) ([]ledger.Record, error) {
	out, err := l.scan(nil, filters, limit)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// QueryPage ...
func (l *Ledger) QueryPage(_ context.Context, filters []ledger.TagFilter, limit int, cursor string) (*ledger.Page, error) {
	var after []byte
	if cursor != "" {
		r, err := ledger.DecodeCursor(cursor)
		if err != nil {
			return nil, err
		}

		after = orderKey(r.Timestamp, r.ID)
	}

	records, err := l.scan(after, filters, limit)
	if err != nil {
		return nil, err
	}

	p := ledger.Page{Edges: make([]ledger.Edge, len(records))}
	for i, v := range records {
		p.Edges[i] = ledger.Edge{Record: v, Cursor: ledger.EncodeCursor(v)}
	}

	return &p, nil
}

// scan iterates records in recency descending order starting after the order key.
func (l *Ledger) scan(after []byte, filters []ledger.TagFilter, limit int) ([]ledger.Record, error) {
	var out []ledger.Record

	if err := l.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		it.Seek(prefixOrder)
		if after != nil {
			it.Seek(after)
			if it.ValidForPrefix(prefixOrder) && bytes.Equal(it.Item().Key(), after) {
				it.Next()
			}
		}

		for ; it.ValidForPrefix(prefixOrder); it.Next() {
			if limit > 0 && len(out) == limit {
				break
			}

			_, id := parseOrderKey(it.Item().Key())

			r, err := getRecord(txn, id)
			if err != nil {
				return fmt.Errorf("failed to get record %s: %w", id, err)
			}

			if ledger.Match(r, filters) {
				out = append(out, r)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}

	return out, nil
}

func getRecord(txn *badger.Txn, id string) (ledger.Record, error) {
	item, err := txn.Get(key(prefixRecord, id))
	if err != nil {
		return ledger.Record{}, err
	}

	var dto recordDTO
	if err := item.Value(func(v []byte) error {
		return json.Unmarshal(v, &dto)
	}); err != nil {
		return ledger.Record{}, err
	}

	return ledger.Record{
		ID:        dto.ID,
		Timestamp: dto.Timestamp,
		Address:   dto.Address,
		Tags:      dto.Tags,
	}, nil
}
