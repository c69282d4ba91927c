// Package convert maps ledger records into entities.
// Missing tags fall back to empty strings, or nil for optional fields.
package convert

import (
	"time"

	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
)

// Time converts record timestamp into time.
func Time(ts int64) time.Time {
	return time.Unix(0, ts*int64(time.Millisecond)).UTC()
}

// ToWork ...
func ToWork(r ledger.Record, body []byte) entities.Work {
	return entities.Work{
		ID:          r.ID,
		UpdatedAt:   Time(r.Timestamp),
		Title:       r.Tags.Get(schema.TitleTag),
		Content:     string(body),
		Description: r.Tags.Get(schema.DescriptionTag),
		AuthorID:    r.Tags.Get(schema.AuthorIDTag),
	}
}

// ToWorkWithAuthor ...
func ToWorkWithAuthor(r ledger.Record, body []byte, author entities.Profile, likes int) entities.WorkWithAuthor {
	return entities.WorkWithAuthor{
		Work:              ToWork(r, body),
		Username:          author.Username,
		Fullname:          author.Fullname,
		AuthorDescription: author.Description,
		LikeCount:         likes,
	}
}

// ToProfile converts record into profile. Empty avatar is nil.
func ToProfile(r ledger.Record, avatar []byte) entities.Profile {
	if len(avatar) == 0 {
		avatar = nil
	}

	return entities.Profile{
		ID:                r.ID,
		UpdatedAt:         Time(r.Timestamp),
		Username:          r.Tags.Get(schema.UsernameTag),
		Fullname:          r.Tags.Get(schema.FullnameTag),
		Description:       r.Tags.Get(schema.DescriptionTag),
		OwnerAddress:      r.Tags.Get(schema.OwnerAddressTag),
		SocialLinkPrimary: r.Tags.Optional(schema.SocialLinkPrimaryTag),
		SocialLinkSecond:  r.Tags.Optional(schema.SocialLinkSecondTag),
		Avatar:            avatar,
	}
}

// ToTopic ...
func ToTopic(r ledger.Record) entities.Topic {
	return entities.Topic{
		ID:        r.ID,
		UpdatedAt: Time(r.Timestamp),
		Name:      r.Tags.Get(schema.TopicNameTag),
	}
}

// ToWorkTopic ...
func ToWorkTopic(r ledger.Record) entities.WorkTopic {
	return entities.WorkTopic{
		ID:        r.ID,
		UpdatedAt: Time(r.Timestamp),
		WorkID:    r.Tags.Get(schema.WorkIDTag),
		TopicID:   r.Tags.Get(schema.TopicIDTag),
	}
}

// ToFollow ...
func ToFollow(r ledger.Record) entities.Follow {
	return entities.Follow{
		ID:         r.ID,
		UpdatedAt:  Time(r.Timestamp),
		FollowerID: r.Tags.Get(schema.FollowerIDTag),
		FollowedID: r.Tags.Get(schema.FollowedIDTag),
	}
}

// ToWorkLike ...
func ToWorkLike(r ledger.Record) entities.WorkLike {
	return entities.WorkLike{
		ID:        r.ID,
		UpdatedAt: Time(r.Timestamp),
		WorkID:    r.Tags.Get(schema.WorkIDTag),
		LikerID:   r.Tags.Get(schema.LikerIDTag),
	}
}

// ToWorkResponse ...
func ToWorkResponse(r ledger.Record, body []byte) entities.WorkResponse {
	return entities.WorkResponse{
		ID:              r.ID,
		UpdatedAt:       Time(r.Timestamp),
		WorkID:          r.Tags.Get(schema.WorkIDTag),
		WorkTitle:       r.Tags.Get(schema.WorkTitleTag),
		ResponseContent: string(body),
		ResponderID:     r.Tags.Get(schema.ResponderIDTag),
	}
}

// ToWorkResponseWithProfile ...
func ToWorkResponseWithProfile(r ledger.Record, body []byte, responder entities.Profile) entities.WorkResponseWithProfile {
	return entities.WorkResponseWithProfile{
		WorkResponse: ToWorkResponse(r, body),
		Username:     responder.Username,
		Fullname:     responder.Fullname,
		Description:  responder.Description,
	}
}
