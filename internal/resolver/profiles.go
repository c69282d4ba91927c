package resolver

import (
	"context"

	"github.com/Decentr-net/quill/internal/convert"
	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/schema"
)

// GetProfile returns current version of profile with avatar.
func (r *Resolver) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	return q.profile(ctx, id, true)
}

// GetProfileByOwner returns current profile owned by address.
func (r *Resolver) GetProfileByOwner(ctx context.Context, address string) (*entities.Profile, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	v, err := q.all(ctx, schema.Profile, schema.Eq(schema.OwnerAddressTag, address))
	if err != nil || len(v) == 0 {
		return nil, err
	}

	return q.toProfile(ctx, v[0], true)
}

// GetAvatar returns avatar of profile. Nil is returned if profile is not found or has no avatar.
func (r *Resolver) GetAvatar(ctx context.Context, profileID string) ([]byte, error) {
	p, err := r.GetProfile(ctx, profileID)
	if err != nil || p == nil {
		return nil, err
	}

	return p.Avatar, nil
}

// GetFollowers returns follows of profile.
func (r *Resolver) GetFollowers(ctx context.Context, profileID string, limit int, cursor string) (*entities.Page[entities.Follow], error) {
	return r.follows(ctx, schema.FollowedIDTag, profileID, limit, cursor)
}

// GetFollowed returns follows made by profile.
func (r *Resolver) GetFollowed(ctx context.Context, profileID string, limit int, cursor string) (*entities.Page[entities.Follow], error) {
	return r.follows(ctx, schema.FollowerIDTag, profileID, limit, cursor)
}

func (r *Resolver) follows(ctx context.Context, tag, profileID string, limit int, cursor string) (*entities.Page[entities.Follow], error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	versions, next, err := q.page(ctx, schema.Follow, q.app.Filters(schema.Follow, schema.Eq(tag, profileID)), limit, cursor)
	if err != nil {
		return nil, err
	}

	out := entities.Page[entities.Follow]{Items: make([]entities.Follow, len(versions)), Cursor: next}
	for i, v := range versions {
		out.Items[i] = convert.ToFollow(v.View())
	}

	return &out, nil
}

func (q query) profile(ctx context.Context, id string, avatar bool) (*entities.Profile, error) {
	v, err := q.byID(ctx, schema.Profile, id)
	if err != nil || v == nil {
		return nil, err
	}

	return q.toProfile(ctx, *v, avatar)
}

func (q query) toProfile(ctx context.Context, v dedup.Version, avatar bool) (*entities.Profile, error) {
	var body []byte
	if avatar {
		var err error
		if body, err = q.body(ctx, v); err != nil {
			return nil, err
		}
	}

	p := convert.ToProfile(v.View(), body)

	return &p, nil
}
