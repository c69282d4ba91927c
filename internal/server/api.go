package server

import (
	"time"

	"github.com/Decentr-net/quill/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Work ...
// swagger:model
type Work struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	UpdatedAt   uint64 `json:"updatedAt"`
	LikeCount   int    `json:"likeCount"`
	Author      Author `json:"author"`
}

// Author is a short form of profile attached to works and responses.
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
	Description string `json:"description"`
}

// WorksPage ...
// swagger:model
type WorksPage struct {
	Works []Work `json:"works"`
	// Cursor is a position to continue listing from. It is empty when page is empty.
	Cursor string `json:"cursor"`
}

// Profile ...
// swagger:model
type Profile struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Fullname          string  `json:"fullname"`
	Description       string  `json:"description"`
	OwnerAddress      string  `json:"ownerAddress"`
	SocialLinkPrimary *string `json:"socialLinkPrimary,omitempty"`
	SocialLinkSecond  *string `json:"socialLinkSecond,omitempty"`
	UpdatedAt         uint64  `json:"updatedAt"`
}

// Follow ...
type Follow struct {
	ID         string `json:"id"`
	FollowerID string `json:"followerId"`
	FollowedID string `json:"followedId"`
	UpdatedAt  uint64 `json:"updatedAt"`
}

// FollowsPage ...
// swagger:model
type FollowsPage struct {
	Follows []Follow `json:"follows"`
	Cursor  string   `json:"cursor"`
}

// WorkLike ...
type WorkLike struct {
	ID        string `json:"id"`
	WorkID    string `json:"workId"`
	LikerID   string `json:"likerId"`
	UpdatedAt uint64 `json:"updatedAt"`
}

// WorkLikesPage ...
// swagger:model
type WorkLikesPage struct {
	Likes  []WorkLike `json:"likes"`
	Cursor string     `json:"cursor"`
}

// Topic ...
// swagger:model
type Topic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt uint64 `json:"updatedAt"`
}

// Likes ...
// swagger:model
type Likes struct {
	Count int `json:"count"`
	// Liked is set when likedBy is passed.
	Liked *bool `json:"liked,omitempty"`
}

// Response ...
type Response struct {
	ID        string `json:"id"`
	WorkID    string `json:"workId"`
	WorkTitle string `json:"workTitle"`
	Content   string `json:"content"`
	UpdatedAt uint64 `json:"updatedAt"`
	Responder Author `json:"responder"`
}

// ResponsesPage ...
// swagger:model
type ResponsesPage struct {
	Responses []Response `json:"responses"`
	Cursor    string     `json:"cursor"`
}

func unix(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}

	return uint64(t.Unix())
}

func toAPIWork(w entities.WorkWithAuthor) Work {
	return Work{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Content:     w.Content,
		UpdatedAt:   unix(w.UpdatedAt),
		LikeCount:   w.LikeCount,
		Author: Author{
			ID:          w.AuthorID,
			Username:    w.Username,
			Fullname:    w.Fullname,
			Description: w.AuthorDescription,
		},
	}
}

func toAPIWorksPage(p *entities.Page[entities.WorkWithAuthor]) WorksPage {
	out := WorksPage{Works: []Work{}}
	if p == nil {
		return out
	}

	out.Cursor = p.Cursor
	for _, v := range p.Items {
		out.Works = append(out.Works, toAPIWork(v))
	}

	return out
}

func toAPIProfile(p *entities.Profile) Profile {
	return Profile{
		ID:                p.ID,
		Username:          p.Username,
		Fullname:          p.Fullname,
		Description:       p.Description,
		OwnerAddress:      p.OwnerAddress,
		SocialLinkPrimary: p.SocialLinkPrimary,
		SocialLinkSecond:  p.SocialLinkSecond,
		UpdatedAt:         unix(p.UpdatedAt),
	}
}

func toAPIFollowsPage(p *entities.Page[entities.Follow]) FollowsPage {
	out := FollowsPage{Follows: []Follow{}}
	if p == nil {
		return out
	}

	out.Cursor = p.Cursor
	for _, v := range p.Items {
		out.Follows = append(out.Follows, Follow{
			ID:         v.ID,
			FollowerID: v.FollowerID,
			FollowedID: v.FollowedID,
			UpdatedAt:  unix(v.UpdatedAt),
		})
	}

	return out
}

func toAPIWorkLikesPage(p *entities.Page[entities.WorkLike]) WorkLikesPage {
	out := WorkLikesPage{Likes: []WorkLike{}}
	if p == nil {
		return out
	}

	out.Cursor = p.Cursor
	for _, v := range p.Items {
		out.Likes = append(out.Likes, WorkLike{
			ID:        v.ID,
			WorkID:    v.WorkID,
			LikerID:   v.LikerID,
			UpdatedAt: unix(v.UpdatedAt),
		})
	}

	return out
}

func toAPITopics(t []entities.Topic) []Topic {
	out := make([]Topic, len(t))
	for i, v := range t {
		out[i] = Topic{ID: v.ID, Name: v.Name, UpdatedAt: unix(v.UpdatedAt)}
	}

	return out
}

func toAPIResponsesPage(p *entities.Page[entities.WorkResponseWithProfile]) ResponsesPage {
	out := ResponsesPage{Responses: []Response{}}
	if p == nil {
		return out
	}

	out.Cursor = p.Cursor
	for _, v := range p.Items {
		out.Responses = append(out.Responses, Response{
			ID:        v.ID,
			WorkID:    v.WorkID,
			WorkTitle: v.WorkTitle,
			Content:   v.ResponseContent,
			UpdatedAt: unix(v.UpdatedAt),
			Responder: Author{
				ID:          v.ResponderID,
				Username:    v.Username,
				Fullname:    v.Fullname,
				Description: v.Description,
			},
		})
	}

	return out
}
