package resolver

import (
	"context"

	"github.com/Decentr-net/quill/internal/convert"
	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/schema"
)

// GetTopics returns every current topic.
func (r *Resolver) GetTopics(ctx context.Context) ([]entities.Topic, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	v, err := q.all(ctx, schema.Topic)
	if err != nil {
		return nil, err
	}

	return toTopics(v), nil
}

// GetTopic returns topic by id of any of its versions.
func (r *Resolver) GetTopic(ctx context.Context, id string) (*entities.Topic, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	v, err := q.byID(ctx, schema.Topic, id)
	if err != nil || v == nil {
		return nil, err
	}

	t := convert.ToTopic(v.View())

	return &t, nil
}

// GetTopicByName ...
func (r *Resolver) GetTopicByName(ctx context.Context, name string) (*entities.Topic, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	v, err := q.all(ctx, schema.Topic, schema.Eq(schema.TopicNameTag, name))
	if err != nil || len(v) == 0 {
		return nil, err
	}

	t := convert.ToTopic(v[0].View())

	return &t, nil
}

// GetWorkTopics returns current topics linked to work.
func (r *Resolver) GetWorkTopics(ctx context.Context, workID string) ([]entities.Topic, error) {
	q, err := r.query()
	if err != nil {
		return nil, err
	}

	links, err := q.all(ctx, schema.WorkTopic, schema.Eq(schema.WorkIDTag, workID))
	if err != nil {
		return nil, err
	}

	topics, err := mapConcurrently(ctx, links, func(ctx context.Context, l dedup.Version) (*dedup.Version, error) {
		return q.byID(ctx, schema.Topic, convert.ToWorkTopic(l.View()).TopicID)
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Topic, 0, len(topics))
	for _, v := range topics {
		if v != nil {
			out = append(out, convert.ToTopic(v.View()))
		}
	}

	return out, nil
}

func toTopics(v []dedup.Version) []entities.Topic {
	out := make([]entities.Topic, len(v))
	for i := range v {
		out[i] = convert.ToTopic(v[i].View())
	}

	return out
}
