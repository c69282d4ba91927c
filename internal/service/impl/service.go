// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/dedup"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/resolver"
	"github.com/Decentr-net/quill/internal/schema"
	"github.com/Decentr-net/quill/internal/service"
	"github.com/Decentr-net/quill/internal/session"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	*resolver.Resolver

	s *session.Session
}

// New creates new instance of service.
func New(s *session.Session) service.Service {
	return srv{
		Resolver: resolver.New(s),
		s:        s,
	}
}

func (s srv) AddWork(ctx context.Context, w service.WorkInput, fund bool) (*ledger.Receipt, error) {
	if w.Title == "" || w.AuthorID == "" {
		return nil, fmt.Errorf("%w: title and author are required", service.ErrInvalidRequest)
	}

	return s.commit(ctx, []byte(w.Content), s.workTags(schema.Add, w), fund)
}

func (s srv) UpdateWork(ctx context.Context, priorID string, w service.WorkInput, address string, fund bool) (*ledger.Receipt, error) {
	prior, err := s.owned(ctx, schema.Work, priorID, address)
	if err != nil {
		return nil, err
	}

	if prior.Tags.Get(schema.TitleTag) != w.Title ||
		prior.Tags.Get(schema.DescriptionTag) != w.Description ||
		prior.Tags.Get(schema.AuthorIDTag) != w.AuthorID {
		return nil, fmt.Errorf("%w: title, description and author of work can not be changed", service.ErrInvalidRequest)
	}

	return s.commit(ctx, []byte(w.Content), s.workTags(schema.Update, w), fund)
}

func (s srv) RemoveWork(ctx context.Context, workID string, address string, fund bool) (*ledger.Receipt, error) {
	prior, err := s.owned(ctx, schema.Work, workID, address)
	if err != nil {
		return nil, err
	}

	return s.remove(ctx, schema.Work, *prior, fund)
}

func (s srv) AddProfile(ctx context.Context, p service.ProfileInput, address string, fund bool) (*ledger.Receipt, error) {
	if address == "" || p.Username == "" {
		return nil, fmt.Errorf("%w: owner and username are required", service.ErrInvalidRequest)
	}

	return s.commit(ctx, p.Avatar, s.profileTags(schema.Add, p, address), fund)
}

func (s srv) UpdateProfile(ctx context.Context, priorID string, p service.ProfileInput, address string, fund bool) (*ledger.Receipt, error) {
	prior, err := s.owned(ctx, schema.Profile, priorID, address)
	if err != nil {
		return nil, err
	}

	if prior.Tags.Get(schema.OwnerAddressTag) != address {
		return nil, fmt.Errorf("%w: profile %s belongs to %s", service.ErrOwnership, priorID, prior.Tags.Get(schema.OwnerAddressTag))
	}

	return s.commit(ctx, p.Avatar, s.profileTags(schema.Update, p, address), fund)
}

func (s srv) RemoveProfile(ctx context.Context, profileID string, address string, fund bool) (*ledger.Receipt, error) {
	prior, err := s.owned(ctx, schema.Profile, profileID, address)
	if err != nil {
		return nil, err
	}

	if err := s.dependents(ctx, *prior); err != nil {
		return nil, err
	}

	return s.remove(ctx, schema.Profile, *prior, fund)
}

// dependents fails with ErrHasDependents while profile authors current works or responses.
// Pages joining them would fail on the missing profile otherwise.
func (s srv) dependents(ctx context.Context, prior ledger.Record) error {
	r, err := s.s.Reader()
	if err != nil {
		return err
	}

	app := s.s.App()

	records, err := r.QueryByTags(ctx, app.GroupFilters(schema.Profile, prior), 0)
	if err != nil {
		return fmt.Errorf("failed to query versions of %s: %w", prior.ID, err)
	}

	versions := dedup.Versions(records, schema.Profile)
	if len(versions) == 0 {
		return nil
	}
	profileID := versions[0].Origin.ID

	for t, tag := range map[schema.EntityType]string{
		schema.Work:         schema.AuthorIDTag,
		schema.WorkResponse: schema.ResponderIDTag,
	} {
		records, err := r.QueryByTags(ctx, app.Filters(t, schema.Eq(tag, profileID)), 0)
		if err != nil {
			return fmt.Errorf("failed to query %s of %s: %w", t, profileID, err)
		}

		if n := len(dedup.Versions(records, t)); n > 0 {
			return fmt.Errorf("%w: profile %s has %d current %s entities", service.ErrHasDependents, profileID, n, t)
		}
	}

	return nil
}

func (s srv) AddFollow(ctx context.Context, followerID, followedID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.Follow, schema.Add, fund,
		schema.FollowerIDTag, followerID, schema.FollowedIDTag, followedID)
}

func (s srv) RemoveFollow(ctx context.Context, followerID, followedID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.Follow, schema.Remove, fund,
		schema.FollowerIDTag, followerID, schema.FollowedIDTag, followedID)
}

func (s srv) AddTopic(ctx context.Context, name string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.Topic, schema.Add, fund, schema.TopicNameTag, name)
}

func (s srv) RemoveTopic(ctx context.Context, name string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.Topic, schema.Remove, fund, schema.TopicNameTag, name)
}

func (s srv) AddWorkTopic(ctx context.Context, workID, topicID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.WorkTopic, schema.Add, fund,
		schema.WorkIDTag, workID, schema.TopicIDTag, topicID)
}

func (s srv) RemoveWorkTopic(ctx context.Context, workID, topicID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.WorkTopic, schema.Remove, fund,
		schema.WorkIDTag, workID, schema.TopicIDTag, topicID)
}

func (s srv) AddWorkLike(ctx context.Context, workID, likerID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.WorkLike, schema.Add, fund,
		schema.WorkIDTag, workID, schema.LikerIDTag, likerID)
}

func (s srv) RemoveWorkLike(ctx context.Context, workID, likerID string, fund bool) (*ledger.Receipt, error) {
	return s.link(ctx, schema.WorkLike, schema.Remove, fund,
		schema.WorkIDTag, workID, schema.LikerIDTag, likerID)
}

func (s srv) AddWorkResponse(ctx context.Context, r service.ResponseInput, fund bool) (*ledger.Receipt, error) {
	if r.WorkID == "" || r.ResponderID == "" {
		return nil, fmt.Errorf("%w: work and responder are required", service.ErrInvalidRequest)
	}

	tags := s.s.App().Tags(schema.WorkResponse, schema.Add, schema.TextContent,
		ledger.Tag{Name: schema.WorkIDTag, Value: r.WorkID},
		ledger.Tag{Name: schema.WorkTitleTag, Value: r.WorkTitle},
		ledger.Tag{Name: schema.ResponderIDTag, Value: r.ResponderID},
	)

	return s.commit(ctx, []byte(r.Content), tags, fund)
}

func (s srv) RemoveWorkResponse(ctx context.Context, responseID string, address string, fund bool) (*ledger.Receipt, error) {
	prior, err := s.owned(ctx, schema.WorkResponse, responseID, address)
	if err != nil {
		return nil, err
	}

	return s.remove(ctx, schema.WorkResponse, *prior, fund, schema.WorkIDTag, schema.ResponderIDTag)
}

func (s srv) workTags(action schema.Action, w service.WorkInput) ledger.Tags {
	return s.s.App().Tags(schema.Work, action, schema.TextContent,
		ledger.Tag{Name: schema.TitleTag, Value: w.Title},
		ledger.Tag{Name: schema.DescriptionTag, Value: w.Description},
		ledger.Tag{Name: schema.AuthorIDTag, Value: w.AuthorID},
	)
}

func (s srv) profileTags(action schema.Action, p service.ProfileInput, address string) ledger.Tags {
	contentType := p.AvatarContentType
	if contentType == "" {
		contentType = schema.BinaryContent
	}

	extra := []ledger.Tag{
		{Name: schema.OwnerAddressTag, Value: address},
		{Name: schema.UsernameTag, Value: p.Username},
		{Name: schema.FullnameTag, Value: p.Fullname},
		{Name: schema.DescriptionTag, Value: p.Description},
	}
	if p.SocialLinkPrimary != nil {
		extra = append(extra, ledger.Tag{Name: schema.SocialLinkPrimaryTag, Value: *p.SocialLinkPrimary})
	}
	if p.SocialLinkSecond != nil {
		extra = append(extra, ledger.Tag{Name: schema.SocialLinkSecondTag, Value: *p.SocialLinkSecond})
	}

	return s.s.App().Tags(schema.Profile, action, contentType, extra...)
}

// link commits bodyless record of entity identified by pairs of tag names and values.
func (s srv) link(ctx context.Context, t schema.EntityType, action schema.Action, fund bool, pairs ...string) (*ledger.Receipt, error) {
	extra := make([]ledger.Tag, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return nil, fmt.Errorf("%w: %s is required", service.ErrInvalidRequest, pairs[i])
		}

		extra = append(extra, ledger.Tag{Name: pairs[i], Value: pairs[i+1]})
	}

	return s.commit(ctx, nil, s.s.App().Tags(t, action, schema.TextContent, extra...), fund)
}

// remove commits Remove record carrying identifying tags of prior record and copies of its
// tags named in keep.
func (s srv) remove(ctx context.Context, t schema.EntityType, prior ledger.Record, fund bool, keep ...string) (*ledger.Receipt, error) {
	names := append(append([]string{}, schema.IdentifyingTags(t)...), keep...)
	extra := make([]ledger.Tag, len(names))
	for i, name := range names {
		extra[i] = ledger.Tag{Name: name, Value: schema.Value(prior, name)}
	}

	return s.commit(ctx, nil, s.s.App().Tags(t, schema.Remove, schema.TextContent, extra...), fund)
}

// owned returns prior record of entity after checking that it was uploaded by address.
func (s srv) owned(ctx context.Context, t schema.EntityType, id, address string) (*ledger.Record, error) {
	w, err := s.s.Writer()
	if err != nil {
		return nil, err
	}

	r, err := s.s.Reader()
	if err != nil {
		return nil, err
	}

	records, err := r.QueryByIDs(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("failed to query prior record %s: %w", id, err)
	}

	if len(records) == 0 || schema.TypeOf(records[0]) != t {
		return nil, fmt.Errorf("%w: %s %s", ledger.ErrNotFound, t, id)
	}

	owner, err := w.Owner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner of %s: %w", id, err)
	}

	if owner != address {
		log.WithField("id", id).WithField("owner", owner).WithField("address", address).Warn("ownership check failed")
		return nil, fmt.Errorf("%w: %s %s", service.ErrOwnership, t, id)
	}

	return &records[0], nil
}

// commit funds upload if requested and uploads record.
func (s srv) commit(ctx context.Context, body []byte, tags ledger.Tags, fund bool) (*ledger.Receipt, error) {
	w, err := s.s.Writer()
	if err != nil {
		return nil, err
	}

	if fund {
		price, err := w.Price(ctx, len(body))
		if err != nil {
			return nil, fmt.Errorf("failed to get price: %w", err)
		}

		if err := w.Fund(ctx, price); err != nil {
			return nil, fmt.Errorf("failed to fund upload: %w", err)
		}
	}

	rc, err := w.Upload(ctx, body, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to upload: %w", err)
	}

	log.WithField("id", rc.ID).WithField("entity", tags.Get(schema.EntityTypeTag)).
		WithField("action", tags.Get(schema.ActionTag)).Debug("record committed")

	return rc, nil
}
