// Package resolver builds current views of entities from ledger records.
//
// Paged queries are anchored to raw record positions: a page is filtered on its own, so it
// may contain fewer items than requested. A record is shown on a page only if it is still the
// latest record of its entity, so entities updated or removed later never re-appear on
// subsequent pages as stale versions.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
	"github.com/Decentr-net/quill/internal/session"
)

// ErrDependencyMissing is returned when an entity referenced by a page item can not be resolved.
var ErrDependencyMissing = errors.New("dependency missing")

// ErrInvalidLimit is returned when page limit is not positive.
var ErrInvalidLimit = errors.New("invalid limit")

var log = logrus.WithField("layer", "resolver").WithField("package", "resolver")

const maxConcurrency = 8

// Resolver resolves entities through a session.
type Resolver struct {
	s *session.Session
}

// New creates new instance of Resolver.
func New(s *session.Session) *Resolver {
	return &Resolver{
		s: s,
	}
}

type query struct {
	rd  ledger.Reader
	app schema.App
}

func (r *Resolver) query() (query, error) {
	rd, err := r.s.Reader()
	if err != nil {
		return query{}, err
	}

	return query{rd: rd, app: r.s.App()}, nil
}

// page queries raw page and returns current versions of entities found on it.
func (q query) page(ctx context.Context, t schema.EntityType, filters []ledger.TagFilter,
	limit int, cursor string) ([]dedup.Version, string, error) {
	if limit <= 0 {
		return nil, "", fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	p, err := q.rd.QueryPage(ctx, filters, limit, cursor)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query page: %w", err)
	}

	if p == nil {
		return nil, "", nil
	}

	current := dedup.Current(p.Records(), t)

	versions, err := mapConcurrently(ctx, current, func(ctx context.Context, rec ledger.Record) (*dedup.Version, error) {
		v, err := q.group(ctx, t, rec)
		if err != nil {
			return nil, err
		}

		if v == nil || v.Latest.ID != rec.ID {
			return nil, nil
		}

		return v, nil
	})
	if err != nil {
		return nil, "", err
	}

	out := make([]dedup.Version, 0, len(versions))
	for _, v := range versions {
		if v != nil {
			out = append(out, *v)
		}
	}

	if dropped := len(p.Edges) - len(out); dropped > 0 {
		log.WithField("entity", t).WithField("dropped", dropped).Debug("page is shorter than raw page")
	}

	return out, p.Cursor(), nil
}

// group returns current version of entity record belongs to. Nil means entity is removed.
func (q query) group(ctx context.Context, t schema.EntityType, rec ledger.Record) (*dedup.Version, error) {
	records, err := q.rd.QueryByTags(ctx, q.app.GroupFilters(t, rec), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions of %s: %w", rec.ID, err)
	}

	// the first record of referenced entity is found by its id only
	if name, ok := schema.Reference(t); ok {
		id := schema.Value(rec, name)
		first, err := q.rd.QueryByIDs(ctx, []string{id})
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", id, err)
		}

		for _, v := range first {
			if ledger.Match(v, q.app.Filters(t)) && v.Tags.Get(name) == "" {
				records = append(records, v)
			}
		}
		ledger.SortRecords(records)
	}

	v := dedup.Versions(records, t)
	if len(v) == 0 {
		return nil, nil
	}

	return &v[0], nil
}

// byID returns current version of entity which has a record with id.
// Nil is returned if record is unknown, belongs to other entity type, or entity is removed.
func (q query) byID(ctx context.Context, t schema.EntityType, id string) (*dedup.Version, error) {
	if id == "" {
		return nil, nil
	}

	records, err := q.rd.QueryByIDs(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", id, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	rec := records[0]
	if schema.TypeOf(rec) != t || rec.Tags.Get(schema.AppNameTag) != q.app.Name {
		return nil, nil
	}

	return q.group(ctx, t, rec)
}

// all returns current versions of every entity matching filters.
func (q query) all(ctx context.Context, t schema.EntityType, filters ...ledger.TagFilter) ([]dedup.Version, error) {
	records, err := q.rd.QueryByTags(ctx, q.app.Filters(t, filters...), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t, err)
	}

	return dedup.Versions(records, t), nil
}

func (q query) body(ctx context.Context, v dedup.Version) ([]byte, error) {
	b, err := q.rd.GetData(ctx, v.Latest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get data of %s: %w", v.Latest.ID, err)
	}

	if b == nil {
		log.WithField("id", v.Latest.ID).Warn("record body is not resolved")
	}

	return b, nil
}

// mapConcurrently applies f to every item keeping order of items.
func mapConcurrently[T, R any](ctx context.Context, in []T, f func(ctx context.Context, v T) (R, error)) ([]R, error) {
	out := make([]R, len(in))

	gr, ctx := errgroup.WithContext(ctx)
	gr.SetLimit(maxConcurrency)

	for i := range in {
		i := i
		gr.Go(func() error {
			v, err := f(ctx, in[i])
			if err != nil {
				return err
			}

			out[i] = v

			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
