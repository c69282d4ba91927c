package ledger

import (
	"context"
)

// Reader is read-only capability of a ledger.
type Reader interface {
	Querier
	Fetcher
}

// Writer is capability to commit and pay for records.
type Writer interface {
	Uploader
	Funder
	Validator
}

// Ledger is full capability of a ledger.
type Ledger interface {
	Reader
	Writer
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ping pings v if it supports ping.
func Ping(ctx context.Context, v interface{}) error {
	if p, ok := v.(pinger); ok {
		return p.Ping(ctx)
	}

	return nil
}

type composed struct {
	Reader
	Writer
}

// Compose builds ledger from separate read and write capabilities.
func Compose(r Reader, w Writer) Ledger {
	return composed{
		Reader: r,
		Writer: w,
	}
}

func (c composed) Ping(ctx context.Context) error {
	return Ping(ctx, c.Reader)
}
