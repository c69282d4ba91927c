package resolver

import (
	"context"
	"fmt"
	"sort"

	"github.com/Decentr-net/quill/internal/convert"
	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
)

// WorksPage is a page of works.
type WorksPage = entities.Page[entities.WorkWithAuthor]

// GetWork returns current version of work. Any version id of the work can be used.
func (r *Resolver) GetWork(ctx context.Context, id string) (*entities.WorkWithAuthor, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	v, err := q.byID(ctx, schema.Work, id)
	if err != nil || v == nil {
		return nil, err
	}

	w, err := q.work(ctx, *v)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// GetLatestWorks returns works ordered by their last update.
func (r *Resolver) GetLatestWorks(ctx context.Context, limit int, cursor string) (*WorksPage, error) {
	return r.works(ctx, nil, limit, cursor)
}

// GetWorksTop returns page of latest works ordered by likes count.
func (r *Resolver) GetWorksTop(ctx context.Context, limit int, cursor string) (*WorksPage, error) {
	return top(r.works(ctx, nil, limit, cursor))
}

// GetAuthorWorks returns works of author ordered by their last update.
func (r *Resolver) GetAuthorWorks(ctx context.Context, authorID string, limit int, cursor string) (*WorksPage, error) {
	return r.works(ctx, []ledger.TagFilter{schema.Eq(schema.AuthorIDTag, authorID)}, limit, cursor)
}

// GetAuthorWorksTop returns page of author's latest works ordered by likes count.
func (r *Resolver) GetAuthorWorksTop(ctx context.Context, authorID string, limit int, cursor string) (*WorksPage, error) {
	return top(r.GetAuthorWorks(ctx, authorID, limit, cursor))
}

// GetWorksByAllFollowed returns works of every profile followed by follower.
func (r *Resolver) GetWorksByAllFollowed(ctx context.Context, followerID string, limit int, cursor string) (*WorksPage, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	follows, err := q.all(ctx, schema.Follow, schema.Eq(schema.FollowerIDTag, followerID))
	if err != nil {
		return nil, err
	}

	if len(follows) == 0 {
		return &WorksPage{Items: []entities.WorkWithAuthor{}}, nil
	}

	authors := make([]string, len(follows))
	for i, v := range follows {
		authors[i] = v.Latest.Tags.Get(schema.FollowedIDTag)
	}

	return r.works(ctx, []ledger.TagFilter{schema.In(schema.AuthorIDTag, authors...)}, limit, cursor)
}

// GetWorksByTopic returns works linked to topic ordered by link time.
// Links to removed works are skipped.
func (r *Resolver) GetWorksByTopic(ctx context.Context, topicID string, limit int, cursor string) (*WorksPage, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	links, next, err := q.page(ctx, schema.WorkTopic,
		q.app.Filters(schema.WorkTopic, schema.Eq(schema.TopicIDTag, topicID)), limit, cursor)
	if err != nil {
		return nil, err
	}

	works, err := mapConcurrently(ctx, links, func(ctx context.Context, l dedup.Version) (*entities.WorkWithAuthor, error) {
		v, err := q.byID(ctx, schema.Work, convert.ToWorkTopic(l.View()).WorkID)
		if err != nil || v == nil {
			return nil, err
		}

		w, err := q.work(ctx, *v)
		if err != nil {
			return nil, err
		}

		return &w, nil
	})
	if err != nil {
		return nil, err
	}

	out := WorksPage{Items: make([]entities.WorkWithAuthor, 0, len(works)), Cursor: next}
	for _, v := range works {
		if v != nil {
			out.Items = append(out.Items, *v)
		}
	}

	return &out, nil
}

// GetWorkLikeCount returns count of like records of work.
// Remove records are counted as well: likes count is a raw records count.
func (r *Resolver) GetWorkLikeCount(ctx context.Context, workID string) (int, error) {
	q, err := r.query()
	if err != nil {
		return 0, err
	}

	return q.likes(ctx, workID)
}

// GetWorkLikes returns current likes of work ordered by like time.
func (r *Resolver) GetWorkLikes(ctx context.Context, workID string, limit int, cursor string) (*entities.Page[entities.WorkLike], error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	versions, next, err := q.page(ctx, schema.WorkLike,
		q.app.Filters(schema.WorkLike, schema.Eq(schema.WorkIDTag, workID)), limit, cursor)
	if err != nil {
		return nil, err
	}

	out := entities.Page[entities.WorkLike]{Items: make([]entities.WorkLike, len(versions)), Cursor: next}
	for i, v := range versions {
		out.Items[i] = convert.ToWorkLike(v.View())
	}

	return &out, nil
}

// HasLiked checks if liker has a current like of work.
func (r *Resolver) HasLiked(ctx context.Context, workID, likerID string) (bool, error) {
	q, err := r.query()
	if err != nil {
		return false, err
	}

	v, err := q.all(ctx, schema.WorkLike, schema.Eq(schema.WorkIDTag, workID), schema.Eq(schema.LikerIDTag, likerID))
	if err != nil {
		return false, err
	}

	return len(v) > 0, nil
}

func (r *Resolver) works(ctx context.Context, filters []ledger.TagFilter, limit int, cursor string) (*WorksPage, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	versions, next, err := q.page(ctx, schema.Work, q.app.Filters(schema.Work, filters...), limit, cursor)
	if err != nil {
		return nil, err
	}

	items, err := mapConcurrently(ctx, versions, q.work)
	if err != nil {
		return nil, err
	}

	return &WorksPage{Items: items, Cursor: next}, nil
}

// work joins work with its author and likes count.
func (q query) work(ctx context.Context, v dedup.Version) (entities.WorkWithAuthor, error) {
	body, err := q.body(ctx, v)
	if err != nil {
		return entities.WorkWithAuthor{}, err
	}

	authorID := v.Latest.Tags.Get(schema.AuthorIDTag)
	author, err := q.profile(ctx, authorID, false)
	if err != nil {
		return entities.WorkWithAuthor{}, err
	}

	if author == nil {
		return entities.WorkWithAuthor{}, fmt.Errorf("%w: author %s of work %s", ErrDependencyMissing, authorID, v.Origin.ID)
	}

	likes, err := q.likes(ctx, v.Origin.ID)
	if err != nil {
		return entities.WorkWithAuthor{}, err
	}

	return convert.ToWorkWithAuthor(v.View(), body, *author, likes), nil
}

func (q query) likes(ctx context.Context, workID string) (int, error) {
	records, err := q.rd.QueryByTags(ctx, q.app.Filters(schema.WorkLike, schema.Eq(schema.WorkIDTag, workID)), 0)
	if err != nil {
		return 0, fmt.Errorf("failed to query likes of %s: %w", workID, err)
	}

	return len(records), nil
}

// top orders page by likes count. Equal counts keep page order.
func top(p *WorksPage, err error) (*WorksPage, error) {
	if err != nil {
		return nil, err
	}

	sort.SliceStable(p.Items, func(i, j int) bool {
		return p.Items[i].LikeCount > p.Items[j].LikeCount
	})

	return p, nil
}
