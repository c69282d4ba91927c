// Package postgres is implementation of the ledger over postgres index.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/ledger"
)

var log = logrus.WithField("layer", "ledger").WithField("package", "postgres")

// Ledger keeps records in postgres.
type Ledger struct {
	*ledger.LocalFunder

	db      *sqlx.DB
	address string
	clock   *ledger.Clock
}

var _ ledger.Ledger = (*Ledger)(nil)

type recordDTO struct {
	ID        string `db:"id"`
	Timestamp int64  `db:"ts"`
	Address   string `db:"address"`
	Tags      []byte `db:"tags"`
}

func (r recordDTO) toRecord() (ledger.Record, error) {
	var tags ledger.Tags
	if err := json.Unmarshal(r.Tags, &tags); err != nil {
		return ledger.Record{}, fmt.Errorf("failed to unmarshal tags of %s: %w", r.ID, err)
	}

	return ledger.Record{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Address:   r.Address,
		Tags:      tags,
	}, nil
}

// New creates new instance of Ledger. Records are uploaded on behalf of address.
func New(db *sql.DB, address string, funder *ledger.LocalFunder) *Ledger {
	if funder == nil {
		funder = ledger.NewLocalFunder(ledger.Unlimited, 0)
	}

	return &Ledger{
		LocalFunder: funder,
		db:          sqlx.NewDb(db, "postgres"),
		address:     address,
		clock:       ledger.NewClock(nil),
	}
}

// Ping checks connection.
func (l *Ledger) Ping(ctx context.Context) error {
	if err := l.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

// Upload ...
func (l *Ledger) Upload(ctx context.Context, body []byte, tags ledger.Tags) (*ledger.Receipt, error) {
	if body == nil {
		body = []byte{}
	}
	if tags == nil {
		tags = ledger.Tags{}
	}

	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	id := ledger.NewID(body, tags)

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tx: %w", err)
	}

	ts, err := func() (int64, error) {
		var ts int64
		// records of other writers may be newer than local clock
		if err := tx.GetContext(ctx, &ts, `
			INSERT INTO record(id, ts, address, tags, body)
			VALUES($1, GREATEST($2, (SELECT COALESCE(MAX(ts), 0) + 1 FROM record)), $3, $4, $5)
			RETURNING ts
		`, id, l.clock.Next(), l.address, string(b), body); err != nil {
			return 0, fmt.Errorf("failed to insert record: %w", err)
		}

		for _, v := range tags {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tag(record_id, name, value) VALUES($1, $2, $3) ON CONFLICT DO NOTHING
			`, id, v.Name, v.Value); err != nil {
				return 0, fmt.Errorf("failed to insert tag: %w", err)
			}
		}

		return ts, nil
	}()
	if err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	l.clock.Observe(ts)

	return &ledger.Receipt{
		ID:        id,
		Timestamp: ts,
		Address:   l.address,
	}, nil
}

// GetData ...
func (l *Ledger) GetData(ctx context.Context, id string) ([]byte, error) {
	var b []byte

	if err := l.db.GetContext(ctx, &b, `SELECT body FROM record WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	if b == nil {
		b = []byte{}
	}

	return b, nil
}

// Owner ...
func (l *Ledger) Owner(ctx context.Context, id string) (string, error) {
	var address string

	if err := l.db.GetContext(ctx, &address, `SELECT address FROM record WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("failed to get record %s: %w", id, ledger.ErrNotFound)
		}

		return "", fmt.Errorf("failed to query: %w", err)
	}

	return address, nil
}

// QueryByIDs ...
func (l *Ledger) QueryByIDs(ctx context.Context, ids []string) ([]ledger.Record, error) {
	ids = stringsUnique(ids)
	if len(ids) == 0 {
		return []ledger.Record{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, ts, address, tags FROM record
		WHERE id IN (?)
		ORDER BY ts DESC, id ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	return l.selectRecords(ctx, l.db.Rebind(query), args...)
}

// QueryByTags ...
func (l *Ledger) QueryByTags(ctx context.Context, filters []ledger.TagFilter, limit int) ([]ledger.Record, error) {
	query, args := buildQuery(filters, nil, limit)

	return l.selectRecords(ctx, query, args...)
}

// QueryPage ...
func (l *Ledger) QueryPage(ctx context.Context, filters []ledger.TagFilter, limit int, cursor string) (*ledger.Page, error) {
	var after *ledger.Record
	if cursor != "" {
		r, err := ledger.DecodeCursor(cursor)
		if err != nil {
			return nil, err
		}
		after = &r
	}

	query, args := buildQuery(filters, after, limit)

	records, err := l.selectRecords(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	p := ledger.Page{Edges: make([]ledger.Edge, len(records))}
	for i, v := range records {
		p.Edges[i] = ledger.Edge{Record: v, Cursor: ledger.EncodeCursor(v)}
	}

	return &p, nil
}

// buildQuery builds records query. Column id has "C" collation, so ids are ordered bytewise.
func buildQuery(filters []ledger.TagFilter, after *ledger.Record, limit int) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, f := range filters {
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM tag t WHERE t.record_id = r.id AND t.name = %s AND t.value = ANY(%s))`,
			arg(f.Name), arg(pq.Array(f.Values)),
		))
	}

	if after != nil {
		ts, id := arg(after.Timestamp), arg(after.ID)
		where = append(where, fmt.Sprintf(`(r.ts < %s OR (r.ts = %s AND r.id > %s))`, ts, ts, id))
	}

	var b strings.Builder
	b.WriteString(`SELECT r.id, r.ts, r.address, r.tags FROM record r`)
	if len(where) > 0 {
		b.WriteString(` WHERE `)
		b.WriteString(strings.Join(where, ` AND `))
	}
	b.WriteString(` ORDER BY r.ts DESC, r.id ASC`)
	if limit > 0 {
		b.WriteString(` LIMIT `)
		b.WriteString(arg(limit))
	}

	return b.String(), args
}

func (l *Ledger) selectRecords(ctx context.Context, query string, args ...interface{}) ([]ledger.Record, error) {
	var dto []recordDTO

	if err := l.db.SelectContext(ctx, &dto, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]ledger.Record, len(dto))
	for i, v := range dto {
		r, err := v.toRecord()
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
