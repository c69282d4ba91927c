// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Profile ...
type Profile struct {
	ID                string
	UpdatedAt         time.Time
	Username          string
	Fullname          string
	Description       string
	OwnerAddress      string
	SocialLinkPrimary *string
	SocialLinkSecond  *string
	Avatar            []byte
}

// Work ...
type Work struct {
	ID          string
	UpdatedAt   time.Time
	Title       string
	Content     string
	Description string
	AuthorID    string
}

// WorkWithAuthor is a work joined with its author's profile.
type WorkWithAuthor struct {
	Work
	Username          string
	Fullname          string
	AuthorDescription string
	LikeCount         int
}

// Topic ...
type Topic struct {
	ID        string
	UpdatedAt time.Time
	Name      string
}

// WorkTopic links work to topic.
type WorkTopic struct {
	ID        string
	UpdatedAt time.Time
	WorkID    string
	TopicID   string
}

// Follow ...
type Follow struct {
	ID         string
	UpdatedAt  time.Time
	FollowerID string
	FollowedID string
}

// WorkLike ...
type WorkLike struct {
	ID        string
	UpdatedAt time.Time
	WorkID    string
	LikerID   string
}

// WorkResponse ...
type WorkResponse struct {
	ID              string
	UpdatedAt       time.Time
	WorkID          string
	WorkTitle       string
	ResponseContent string
	ResponderID     string
}

// WorkResponseWithProfile is a response joined with its responder's profile.
type WorkResponseWithProfile struct {
	WorkResponse
	Username    string
	Fullname    string
	Description string
}

// Page is a page of items. Cursor points to the position after the last raw record of page
// and is empty when page has no records.
type Page[T any] struct {
	Items  []T
	Cursor string
}
