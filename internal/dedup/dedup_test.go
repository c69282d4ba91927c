package dedup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
)

func like(id, work, liker string, action schema.Action) ledger.Record {
	return ledger.Record{
		ID: id,
		Tags: ledger.Tags{
			{Name: schema.EntityTypeTag, Value: string(schema.WorkLike)},
			{Name: schema.ActionTag, Value: string(action)},
			{Name: schema.WorkIDTag, Value: work},
			{Name: schema.LikerIDTag, Value: liker},
		},
	}
}

func ids(r []ledger.Record) []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.ID
	}
	return out
}

func TestCurrent(t *testing.T) {
	tt := []struct {
		name     string
		in       []ledger.Record
		expected []string
	}{
		{
			name:     "empty",
			expected: []string{},
		},
		{
			name: "latest_wins",
			in: []ledger.Record{
				like("3", "w", "a", schema.Update),
				like("2", "w", "a", schema.Update),
				like("1", "w", "a", schema.Add),
			},
			expected: []string{"3"},
		},
		{
			name: "remove_suppresses",
			in: []ledger.Record{
				like("3", "w", "a", schema.Remove),
				like("2", "w", "b", schema.Add),
				like("1", "w", "a", schema.Add),
			},
			expected: []string{"2"},
		},
		{
			name: "resurrection",
			in: []ledger.Record{
				like("3", "w", "a", schema.Add),
				like("2", "w", "a", schema.Remove),
				like("1", "w", "a", schema.Add),
			},
			expected: []string{"3"},
		},
		{
			name: "distinct_groups",
			in: []ledger.Record{
				like("4", "w2", "a", schema.Add),
				like("3", "w", "b", schema.Add),
				like("2", "w", "a", schema.Add),
				like("1", "w2", "a", schema.Add),
			},
			expected: []string{"4", "3", "2"},
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ids(Current(tc.in, schema.WorkLike)))
		})
	}
}

func TestCollapse_UnknownType(t *testing.T) {
	in := []ledger.Record{like("2", "w", "a", schema.Add), like("1", "w", "a", schema.Add)}

	require.Equal(t, []string{"2", "1"}, ids(Collapse(in, "unknown")))
}

func TestKey(t *testing.T) {
	names := []string{"a", "b"}
	x := ledger.Record{Tags: ledger.Tags{{Name: "a", Value: "1:2"}, {Name: "b", Value: ""}}}
	y := ledger.Record{Tags: ledger.Tags{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}}

	require.NotEqual(t, Key(x, names), Key(y, names))
	require.Equal(t, Key(x, names), Key(ledger.Record{ID: "other", Tags: x.Tags}, names))
}

func response(id, ref, work, responder string, action schema.Action) ledger.Record {
	r := ledger.Record{
		ID: id,
		Tags: ledger.Tags{
			{Name: schema.EntityTypeTag, Value: string(schema.WorkResponse)},
			{Name: schema.ActionTag, Value: string(action)},
			{Name: schema.WorkIDTag, Value: work},
			{Name: schema.ResponderIDTag, Value: responder},
		},
	}
	if ref != "" {
		r.Tags = append(r.Tags, ledger.Tag{Name: schema.ResponseIDTag, Value: ref})
	}
	return r
}

func TestVersions_WorkResponse(t *testing.T) {
	in := []ledger.Record{
		response("remove-first", "first", "w", "bob", schema.Remove),
		response("second", "", "w", "bob", schema.Add),
		response("first", "", "w", "bob", schema.Add),
	}

	require.Equal(t, []string{"second", "first"}, ids(Collapse(in[1:], schema.WorkResponse)))

	v := Versions(in, schema.WorkResponse)
	require.Len(t, v, 1)
	require.Equal(t, "second", v[0].Origin.ID)
	require.Equal(t, "second", v[0].Latest.ID)
}

func TestCurrent_Properties(t *testing.T) {
	actions := []schema.Action{schema.Add, schema.Update, schema.Remove}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")

		in := make([]ledger.Record, n)
		for i := range in {
			group := rapid.IntRange(0, 4).Draw(t, "group")
			action := rapid.SampledFrom(actions).Draw(t, "action")
			in[i] = like(fmt.Sprintf("r%d", i), "w", fmt.Sprintf("l%d", group), action)
		}

		first := make(map[string]ledger.Record)
		var order []string
		for _, v := range in {
			liker := v.Tags.Get(schema.LikerIDTag)
			if _, ok := first[liker]; !ok {
				first[liker] = v
				order = append(order, liker)
			}
		}

		expected := []string{}
		for _, liker := range order {
			if schema.ActionOf(first[liker]) != schema.Remove {
				expected = append(expected, first[liker].ID)
			}
		}

		out := Current(in, schema.WorkLike)
		if got := ids(out); fmt.Sprint(got) != fmt.Sprint(expected) {
			t.Fatalf("expected %v, got %v", expected, got)
		}

		seen := make(map[string]bool)
		for _, v := range out {
			liker := v.Tags.Get(schema.LikerIDTag)
			if seen[liker] {
				t.Fatalf("group %s is returned twice", liker)
			}
			seen[liker] = true
		}
	})
}

func TestVersions(t *testing.T) {
	in := []ledger.Record{
		like("6", "w", "c", schema.Remove),
		like("5", "w", "a", schema.Update),
		like("4", "w", "b", schema.Add),
		like("3", "w", "c", schema.Add),
		like("2", "w", "a", schema.Remove),
		like("1", "w", "a", schema.Add),
	}

	v := Versions(in, schema.WorkLike)
	require.Len(t, v, 2)

	require.Equal(t, "5", v[0].Latest.ID)
	require.Equal(t, "1", v[0].Origin.ID)
	require.Equal(t, "1", v[0].View().ID)
	require.Equal(t, schema.Update, schema.ActionOf(v[0].View()))

	require.Equal(t, "4", v[1].Latest.ID)
	require.Equal(t, "4", v[1].Origin.ID)

	require.Empty(t, Versions(nil, schema.WorkLike))
	require.Equal(t, ids(Current(in, schema.WorkLike)), []string{v[0].Latest.ID, v[1].Latest.ID})
}
