package resolver

import (
	"context"
	"fmt"

	"github.com/Decentr-net/quill/internal/convert"
	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/schema"
)

// ResponsesPage is a page of responses.
type ResponsesPage = entities.Page[entities.WorkResponseWithProfile]

// GetWorkResponses returns responses to work.
func (r *Resolver) GetWorkResponses(ctx context.Context, workID string, limit int, cursor string) (*ResponsesPage, error) {
	return r.responses(ctx, schema.WorkIDTag, workID, limit, cursor)
}

// GetWorkResponsesByProfile returns responses written by profile.
func (r *Resolver) GetWorkResponsesByProfile(ctx context.Context, profileID string, limit int, cursor string) (*ResponsesPage, error) {
	return r.responses(ctx, schema.ResponderIDTag, profileID, limit, cursor)
}

func (r *Resolver) responses(ctx context.Context, tag, value string, limit int, cursor string) (*ResponsesPage, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	versions, next, err := q.page(ctx, schema.WorkResponse,
		q.app.Filters(schema.WorkResponse, schema.Eq(tag, value)), limit, cursor)
	if err != nil {
		return nil, err
	}

	items, err := mapConcurrently(ctx, versions, q.response)
	if err != nil {
		return nil, err
	}

	return &ResponsesPage{Items: items, Cursor: next}, nil
}

// response joins response with responder's profile.
func (q query) response(ctx context.Context, v dedup.Version) (entities.WorkResponseWithProfile, error) {
	body, err := q.body(ctx, v)
	if err != nil {
		return entities.WorkResponseWithProfile{}, err
	}

	responderID := v.Latest.Tags.Get(schema.ResponderIDTag)
	responder, err := q.profile(ctx, responderID, false)
	if err != nil {
		return entities.WorkResponseWithProfile{}, err
	}

	if responder == nil {
		return entities.WorkResponseWithProfile{}, fmt.Errorf("%w: responder %s of response %s",
			ErrDependencyMissing, responderID, v.Origin.ID)
	}

	return convert.ToWorkResponseWithProfile(v.View(), body, *responder), nil
}
