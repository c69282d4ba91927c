// Package schema contains tag vocabulary of application records.
package schema

import (
	"github.com/Decentr-net/quill/internal/ledger"
)

// EntityType is a kind of logical entity a record represents.
type EntityType string

// Entity types.
const (
	Work         EntityType = "Work"
	Profile      EntityType = "Profile"
	Topic        EntityType = "Topic"
	Follow       EntityType = "Follow"
	WorkLike     EntityType = "WorkLike"
	WorkTopic    EntityType = "WorkTopic"
	WorkResponse EntityType = "WorkResponse"
)

// Action is a lifecycle marker of a record.
type Action string

// Actions.
const (
	Add    Action = "Add"
	Update Action = "Update"
	Remove Action = "Remove"
)

// Base tag names attached to every record.
const (
	AppNameTag     = "App-Name"
	AppVersionTag  = "App-Version"
	ContentTypeTag = "Content-Type"
	EntityTypeTag  = "Entity-Type"
	ActionTag      = "Action"
)

// Entity tag names.
const (
	TitleTag             = "Title"
	DescriptionTag       = "Description"
	AuthorIDTag          = "Author-Id"
	UsernameTag          = "Username"
	FullnameTag          = "Fullname"
	OwnerAddressTag      = "Owner-Address"
	SocialLinkPrimaryTag = "Social-Link-Primary"
	SocialLinkSecondTag  = "Social-Link-Second"
	TopicNameTag         = "Topic-Name"
	WorkIDTag            = "Work-Id"
	TopicIDTag           = "Topic-Id"
	FollowerIDTag        = "Follower-Id"
	FollowedIDTag        = "Followed-Id"
	LikerIDTag           = "Liker-Id"
	ResponderIDTag       = "Responder-Id"
	WorkTitleTag         = "Work-Title"
	ResponseIDTag        = "Response-Id"
)

// Content types.
const (
	TextContent   = "text/plain"
	BinaryContent = "application/octet-stream"
)

// Tags which identify a logical entity. Records sharing values of all of them are versions of
// the same entity.
var identifying = map[EntityType][]string{
	Work:         {TitleTag, DescriptionTag, AuthorIDTag},
	Profile:      {OwnerAddressTag},
	Topic:        {TopicNameTag},
	WorkTopic:    {WorkIDTag, TopicIDTag},
	Follow:       {FollowerIDTag, FollowedIDTag},
	WorkLike:     {WorkIDTag, LikerIDTag},
	WorkResponse: {ResponseIDTag},
}

// Reference tags point to the first record of an entity. The first record itself carries no
// reference: its own id is the value.
var references = map[EntityType]string{
	WorkResponse: ResponseIDTag,
}

// IdentifyingTags returns identifying tag names of entity type.
// Unknown types have no identifying tags, so every record is a separate entity.
func IdentifyingTags(t EntityType) []string {
	return identifying[t]
}

// Reference returns name of the tag referencing the first record of entity, if entities of type
// are identified by their first record.
func Reference(t EntityType) (string, bool) {
	name, ok := references[t]
	return name, ok
}

// Value returns value of identifying tag of record.
func Value(r ledger.Record, name string) string {
	v := r.Tags.Get(name)
	if v != "" {
		return v
	}

	if name == references[TypeOf(r)] {
		return r.ID
	}

	return v
}

// EntityTypes returns all known entity types.
func EntityTypes() []EntityType {
	return []EntityType{Work, Profile, Topic, Follow, WorkLike, WorkTopic, WorkResponse}
}

// App namespaces records of one application.
type App struct {
	Name    string
	Version string
}

// Base returns base tags of record.
func (a App) Base() ledger.Tags {
	return ledger.Tags{
		{Name: AppNameTag, Value: a.Name},
		{Name: AppVersionTag, Value: a.Version},
	}
}

// Tags assembles full tag set of record.
func (a App) Tags(t EntityType, action Action, contentType string, tags ...ledger.Tag) ledger.Tags {
	out := append(a.Base(),
		ledger.Tag{Name: ContentTypeTag, Value: contentType},
		ledger.Tag{Name: EntityTypeTag, Value: string(t)},
		ledger.Tag{Name: ActionTag, Value: string(action)},
	)

	return append(out, tags...)
}

// Filters returns filters matching application records of entity type and extra filters.
// Version is not filtered, so records of older versions stay visible.
func (a App) Filters(t EntityType, extra ...ledger.TagFilter) []ledger.TagFilter {
	out := []ledger.TagFilter{
		{Name: AppNameTag, Values: []string{a.Name}},
		{Name: EntityTypeTag, Values: []string{string(t)}},
	}

	return append(out, extra...)
}

// Eq returns filter matching tag with value.
func Eq(name, value string) ledger.TagFilter {
	return ledger.TagFilter{Name: name, Values: []string{value}}
}

// In returns filter matching tag with any of values.
func In(name string, values ...string) ledger.TagFilter {
	return ledger.TagFilter{Name: name, Values: values}
}

// GroupFilters returns filters matching every version of the entity the record belongs to.
func (a App) GroupFilters(t EntityType, r ledger.Record) []ledger.TagFilter {
	names := IdentifyingTags(t)
	extra := make([]ledger.TagFilter, 0, len(names))
	for _, name := range names {
		extra = append(extra, Eq(name, Value(r, name)))
	}

	return a.Filters(t, extra...)
}

// ActionOf returns action of record.
func ActionOf(r ledger.Record) Action {
	return Action(r.Tags.Get(ActionTag))
}

// TypeOf returns entity type of record.
func TypeOf(r ledger.Record) EntityType {
	return EntityType(r.Tags.Get(EntityTypeTag))
}
