// Package ledger contains primitives and capability interfaces of the append-only ledger.
package ledger

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=./mock/ledger.go -package=mock -source=ledger.go

// ErrNotFound is returned when record is not known to a ledger.
var ErrNotFound = errors.New("not found")

// ErrInsufficientBalance is returned by Fund when balance does not cover requested amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Record is an immutable unit of the ledger. Body is stored separately and fetched by id.
type Record struct {
	ID        string
	Timestamp int64 // unix milliseconds
	Address   string
	Tags      Tags
}

// Edge is a record with its position in a paged query result.
type Edge struct {
	Record Record
	Cursor string
}

// Page is a raw page of query results.
type Page struct {
	Edges []Edge
}

// Records returns records of edges keeping edges order.
func (p *Page) Records() []Record {
	if p == nil {
		return nil
	}

	out := make([]Record, len(p.Edges))
	for i, v := range p.Edges {
		out[i] = v.Record
	}

	return out
}

// Cursor returns cursor of the last edge or empty string if page is empty.
func (p *Page) Cursor() string {
	if p == nil || len(p.Edges) == 0 {
		return ""
	}

	return p.Edges[len(p.Edges)-1].Cursor
}

// Receipt is returned by Upload.
type Receipt struct {
	ID        string
	Timestamp int64
	Address   string
}

// Querier queries records by ids or by tags. Results are ordered by recency descending.
type Querier interface {
	// QueryByIDs returns records with ids.
	QueryByIDs(ctx context.Context, ids []string) ([]Record, error)
	// QueryByTags returns records matching all filters. Zero limit means no limit.
	QueryByTags(ctx context.Context, filters []TagFilter, limit int) ([]Record, error)
	// QueryPage returns page of records matching all filters after cursor.
	// Nil page is returned if transport has no results for the request.
	QueryPage(ctx context.Context, filters []TagFilter, limit int, cursor string) (*Page, error)
}

// Fetcher fetches records' bodies.
type Fetcher interface {
	// GetData returns body of record. Nil is returned if id is not resolved.
	GetData(ctx context.Context, id string) ([]byte, error)
}

// Uploader commits new records.
type Uploader interface {
	Upload(ctx context.Context, body []byte, tags Tags) (*Receipt, error)
}

// Funder pays for uploads.
type Funder interface {
	// Price returns amount required to upload size bytes.
	Price(ctx context.Context, size int) (uint64, error)
	Fund(ctx context.Context, amount uint64) error
}

// Validator returns metadata of committed records.
type Validator interface {
	// Owner returns address which uploaded record.
	Owner(ctx context.Context, id string) (string, error)
}
