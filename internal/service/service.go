// Package service contains capability interfaces of the publishing platform.
package service

import (
	"context"
	"errors"

	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/ledger"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrOwnership is returned when caller does not own the record being changed.
var ErrOwnership = errors.New("caller is not an owner")

// ErrInvalidRequest is returned when write request misses required fields.
var ErrInvalidRequest = errors.New("invalid request")

// ErrHasDependents is returned when removed entity is still referenced by current entities.
var ErrHasDependents = errors.New("entity has dependents")

// WorkInput ...
type WorkInput struct {
	Title       string
	Description string
	Content     string
	AuthorID    string
}

// ProfileInput ...
type ProfileInput struct {
	Username          string
	Fullname          string
	Description       string
	SocialLinkPrimary *string
	SocialLinkSecond  *string
	Avatar            []byte
	// AvatarContentType is used when Avatar is set; octet-stream by default.
	AvatarContentType string
}

// ResponseInput ...
type ResponseInput struct {
	WorkID      string
	WorkTitle   string
	Content     string
	ResponderID string
}

// Reader provides current views of entities.
// Lookups return nil when entity is not found or removed.
type Reader interface {
	GetWork(ctx context.Context, id string) (*entities.WorkWithAuthor, error)
	GetLatestWorks(ctx context.Context, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetWorksTop(ctx context.Context, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetAuthorWorks(ctx context.Context, authorID string, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetAuthorWorksTop(ctx context.Context, authorID string, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetWorksByAllFollowed(ctx context.Context, followerID string, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetWorksByTopic(ctx context.Context, topicID string, limit int, cursor string) (*entities.Page[entities.WorkWithAuthor], error)
	GetWorkLikeCount(ctx context.Context, workID string) (int, error)
	HasLiked(ctx context.Context, workID, likerID string) (bool, error)
	GetWorkLikes(ctx context.Context, workID string, limit int, cursor string) (*entities.Page[entities.WorkLike], error)

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfileByOwner(ctx context.Context, address string) (*entities.Profile, error)
	GetAvatar(ctx context.Context, profileID string) ([]byte, error)
	GetFollowers(ctx context.Context, profileID string, limit int, cursor string) (*entities.Page[entities.Follow], error)
	GetFollowed(ctx context.Context, profileID string, limit int, cursor string) (*entities.Page[entities.Follow], error)

	GetTopics(ctx context.Context) ([]entities.Topic, error)
	GetTopic(ctx context.Context, id string) (*entities.Topic, error)
	GetTopicByName(ctx context.Context, name string) (*entities.Topic, error)
	GetWorkTopics(ctx context.Context, workID string) ([]entities.Topic, error)

	GetWorkResponses(ctx context.Context, workID string, limit int, cursor string) (*entities.Page[entities.WorkResponseWithProfile], error)
	GetWorkResponsesByProfile(ctx context.Context, profileID string, limit int, cursor string) (*entities.Page[entities.WorkResponseWithProfile], error)
}

// Writer commits mutations. When fund is set the upload is paid before it is committed.
type Writer interface {
	AddWork(ctx context.Context, w WorkInput, fund bool) (*ledger.Receipt, error)
	UpdateWork(ctx context.Context, priorID string, w WorkInput, address string, fund bool) (*ledger.Receipt, error)
	RemoveWork(ctx context.Context, workID string, address string, fund bool) (*ledger.Receipt, error)

	AddProfile(ctx context.Context, p ProfileInput, address string, fund bool) (*ledger.Receipt, error)
	UpdateProfile(ctx context.Context, priorID string, p ProfileInput, address string, fund bool) (*ledger.Receipt, error)
	RemoveProfile(ctx context.Context, profileID string, address string, fund bool) (*ledger.Receipt, error)

	AddFollow(ctx context.Context, followerID, followedID string, fund bool) (*ledger.Receipt, error)
	RemoveFollow(ctx context.Context, followerID, followedID string, fund bool) (*ledger.Receipt, error)

	AddTopic(ctx context.Context, name string, fund bool) (*ledger.Receipt, error)
	RemoveTopic(ctx context.Context, name string, fund bool) (*ledger.Receipt, error)

	AddWorkTopic(ctx context.Context, workID, topicID string, fund bool) (*ledger.Receipt, error)
	RemoveWorkTopic(ctx context.Context, workID, topicID string, fund bool) (*ledger.Receipt, error)

	AddWorkLike(ctx context.Context, workID, likerID string, fund bool) (*ledger.Receipt, error)
	RemoveWorkLike(ctx context.Context, workID, likerID string, fund bool) (*ledger.Receipt, error)

	AddWorkResponse(ctx context.Context, r ResponseInput, fund bool) (*ledger.Receipt, error)
	RemoveWorkResponse(ctx context.Context, responseID string, address string, fund bool) (*ledger.Receipt, error)
}

// Service ...
type Service interface {
	Reader
	Writer
}
