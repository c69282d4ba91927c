package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
)

var app = App{Name: "quill", Version: "1"}

func TestIdentifyingTags(t *testing.T) {
	for _, v := range EntityTypes() {
		assert.NotEmpty(t, IdentifyingTags(v), v)
	}

	assert.Equal(t, []string{TitleTag, DescriptionTag, AuthorIDTag}, IdentifyingTags(Work))
	assert.Empty(t, IdentifyingTags("unknown"))
}

func TestApp_Tags(t *testing.T) {
	tags := app.Tags(Work, Update, TextContent, ledger.Tag{Name: TitleTag, Value: "title"})

	require.Equal(t, ledger.Tags{
		{Name: AppNameTag, Value: "quill"},
		{Name: AppVersionTag, Value: "1"},
		{Name: ContentTypeTag, Value: TextContent},
		{Name: EntityTypeTag, Value: "Work"},
		{Name: ActionTag, Value: "Update"},
		{Name: TitleTag, Value: "title"},
	}, tags)

	r := ledger.Record{Tags: tags}
	assert.Equal(t, Update, ActionOf(r))
	assert.Equal(t, Work, TypeOf(r))
}

func TestApp_GroupFilters(t *testing.T) {
	r := ledger.Record{Tags: app.Tags(WorkLike, Add, TextContent,
		ledger.Tag{Name: WorkIDTag, Value: "work"},
		ledger.Tag{Name: LikerIDTag, Value: "liker"},
	)}

	f := app.GroupFilters(WorkLike, r)
	require.Equal(t, []ledger.TagFilter{
		{Name: AppNameTag, Values: []string{"quill"}},
		{Name: EntityTypeTag, Values: []string{"WorkLike"}},
		{Name: WorkIDTag, Values: []string{"work"}},
		{Name: LikerIDTag, Values: []string{"liker"}},
	}, f)
	require.True(t, ledger.Match(r, f))
}

func TestValue(t *testing.T) {
	first := ledger.Record{ID: "first", Tags: app.Tags(WorkResponse, Add, TextContent,
		ledger.Tag{Name: WorkIDTag, Value: "work"},
		ledger.Tag{Name: ResponderIDTag, Value: "responder"},
	)}
	removal := ledger.Record{ID: "removal", Tags: app.Tags(WorkResponse, Remove, TextContent,
		ledger.Tag{Name: ResponseIDTag, Value: "first"},
	)}

	name, ok := Reference(WorkResponse)
	require.True(t, ok)
	require.Equal(t, ResponseIDTag, name)

	_, ok = Reference(WorkLike)
	require.False(t, ok)

	assert.Equal(t, "first", Value(first, ResponseIDTag))
	assert.Equal(t, "first", Value(removal, ResponseIDTag))
	assert.Equal(t, "work", Value(first, WorkIDTag))
	assert.Empty(t, Value(first, LikerIDTag))

	like := ledger.Record{ID: "like", Tags: app.Tags(WorkLike, Add, TextContent)}
	assert.Empty(t, Value(like, ResponseIDTag))

	require.Equal(t, []ledger.TagFilter{
		{Name: AppNameTag, Values: []string{"quill"}},
		{Name: EntityTypeTag, Values: []string{"WorkResponse"}},
		{Name: ResponseIDTag, Values: []string{"first"}},
	}, app.GroupFilters(WorkResponse, first))
}
