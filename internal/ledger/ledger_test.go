package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_Value(t *testing.T) {
	tags := Tags{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
		{Name: "a", Value: "3"},
	}

	v, ok := tags.Value("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = tags.Value("c")
	assert.False(t, ok)
	assert.Equal(t, "", tags.Get("c"))
	assert.Nil(t, tags.Optional("c"))
	assert.Equal(t, "2", *tags.Optional("b"))

	assert.True(t, tags.Has("a", "3"))
	assert.False(t, tags.Has("b", "3"))
}

func TestMatch(t *testing.T) {
	r := Record{Tags: Tags{
		{Name: "type", Value: "work"},
		{Name: "topic", Value: "go"},
		{Name: "topic", Value: "db"},
	}}

	tt := []struct {
		name    string
		filters []TagFilter
		match   bool
	}{
		{name: "empty", match: true},
		{name: "single", filters: []TagFilter{{Name: "type", Values: []string{"work"}}}, match: true},
		{name: "or", filters: []TagFilter{{Name: "type", Values: []string{"profile", "work"}}}, match: true},
		{name: "and", filters: []TagFilter{
			{Name: "type", Values: []string{"work"}},
			{Name: "topic", Values: []string{"db"}},
		}, match: true},
		{name: "and_fail", filters: []TagFilter{
			{Name: "type", Values: []string{"work"}},
			{Name: "topic", Values: []string{"rust"}},
		}},
		{name: "no_values", filters: []TagFilter{{Name: "type"}}},
		{name: "missing", filters: []TagFilter{{Name: "author", Values: []string{"1"}}}},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.match, Match(r, tc.filters))
		})
	}
}

func TestSortRecords(t *testing.T) {
	r := []Record{
		{ID: "b", Timestamp: 1},
		{ID: "c", Timestamp: 2},
		{ID: "a", Timestamp: 1},
		{ID: "d", Timestamp: 3},
	}

	SortRecords(r)

	ids := make([]string, len(r))
	for i, v := range r {
		ids[i] = v.ID
	}
	require.Equal(t, []string{"d", "c", "a", "b"}, ids)
}

func TestCursor(t *testing.T) {
	c := EncodeCursor(Record{ID: "id:with:colons", Timestamp: 123})

	r, err := DecodeCursor(c)
	require.NoError(t, err)
	require.Equal(t, Record{ID: "id:with:colons", Timestamp: 123}, r)

	_, err = DecodeCursor("!!!")
	require.True(t, errors.Is(err, ErrInvalidCursor))

	_, err = DecodeCursor(EncodeCursor(Record{ID: "", Timestamp: 1})[:2])
	require.True(t, errors.Is(err, ErrInvalidCursor))
}

func TestNewID(t *testing.T) {
	a := NewID([]byte("body"), Tags{{Name: "a", Value: "b"}})
	b := NewID([]byte("body"), Tags{{Name: "a", Value: "b"}})

	require.Len(t, a, 43)
	require.NotEqual(t, a, b)
}

func TestLocalFunder(t *testing.T) {
	ctx := context.Background()
	f := NewLocalFunder(100, 2)

	p, err := f.Price(ctx, 30)
	require.NoError(t, err)
	require.EqualValues(t, 60, p)

	require.NoError(t, f.Fund(ctx, p))
	require.EqualValues(t, 40, f.Balance())

	require.True(t, errors.Is(f.Fund(ctx, p), ErrInsufficientBalance))
	require.EqualValues(t, 40, f.Balance())

	require.NoError(t, NewLocalFunder(Unlimited, 1).Fund(ctx, 1<<40))
}

func TestClock(t *testing.T) {
	now := time.Unix(10, 0)
	c := NewClock(func() time.Time { return now })

	require.EqualValues(t, 10000, c.Next())
	require.EqualValues(t, 10001, c.Next())

	c.Observe(20000)
	require.EqualValues(t, 20001, c.Next())
}

func TestPage(t *testing.T) {
	var p *Page
	require.Nil(t, p.Records())
	require.Equal(t, "", p.Cursor())

	p = &Page{Edges: []Edge{{Record: Record{ID: "1"}, Cursor: "c1"}, {Record: Record{ID: "2"}, Cursor: "c2"}}}
	require.Equal(t, []Record{{ID: "1"}, {ID: "2"}}, p.Records())
	require.Equal(t, "c2", p.Cursor())
}
