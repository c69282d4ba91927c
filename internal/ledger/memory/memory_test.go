package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
)

var ctx = context.Background()

func upload(t *testing.T, l *Ledger, body string, tags ...ledger.Tag) *ledger.Receipt {
	r, err := l.Upload(ctx, []byte(body), tags)
	require.NoError(t, err)
	return r
}

func ids(r []ledger.Record) []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.ID
	}
	return out
}

func TestLedger_UploadGetData(t *testing.T) {
	l := New("addr")

	r := upload(t, l, "body", ledger.Tag{Name: "a", Value: "1"})
	require.Len(t, r.ID, 43)
	require.Equal(t, "addr", r.Address)

	b, err := l.GetData(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("body"), b)

	b, err = l.GetData(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, b)

	empty, err := l.Upload(ctx, nil, nil)
	require.NoError(t, err)
	b, err = l.GetData(ctx, empty.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Empty(t, b)
}

func TestLedger_Owner(t *testing.T) {
	l := New("addr")
	r := upload(t, l, "")

	owner, err := l.Owner(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "addr", owner)

	_, err = l.Owner(ctx, "missing")
	require.True(t, errors.Is(err, ledger.ErrNotFound))
}

func TestLedger_QueryByIDs(t *testing.T) {
	l := New("addr")
	a := upload(t, l, "a")
	b := upload(t, l, "b")

	r, err := l.QueryByIDs(ctx, []string{a.ID, "missing", b.ID, a.ID})
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, a.ID}, ids(r))
}

func TestLedger_QueryByTags(t *testing.T) {
	l := New("addr")
	a := upload(t, l, "", ledger.Tag{Name: "type", Value: "work"}, ledger.Tag{Name: "author", Value: "1"})
	upload(t, l, "", ledger.Tag{Name: "type", Value: "profile"})
	c := upload(t, l, "", ledger.Tag{Name: "type", Value: "work"}, ledger.Tag{Name: "author", Value: "2"})

	r, err := l.QueryByTags(ctx, []ledger.TagFilter{{Name: "type", Values: []string{"work"}}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID}, ids(r))

	r, err = l.QueryByTags(ctx, []ledger.TagFilter{{Name: "type", Values: []string{"work"}}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, ids(r))

	r, err = l.QueryByTags(ctx, []ledger.TagFilter{
		{Name: "type", Values: []string{"work"}},
		{Name: "author", Values: []string{"1", "3"}},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, ids(r))
}

func TestLedger_QueryPage(t *testing.T) {
	l := New("addr")
	f := []ledger.TagFilter{{Name: "search", Values: []string{"yes"}}}

	a := upload(t, l, "", ledger.Tag{Name: "search", Value: "yes"})
	b := upload(t, l, "", ledger.Tag{Name: "search", Value: "yes"})
	upload(t, l, "", ledger.Tag{Name: "search", Value: "no"})
	c := upload(t, l, "", ledger.Tag{Name: "search", Value: "yes"})
	d := upload(t, l, "", ledger.Tag{Name: "search", Value: "yes"})

	p, err := l.QueryPage(ctx, f, 2, "")
	require.NoError(t, err)
	require.Equal(t, []string{d.ID, c.ID}, ids(p.Records()))

	p, err = l.QueryPage(ctx, f, 2, p.Cursor())
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, a.ID}, ids(p.Records()))

	p, err = l.QueryPage(ctx, f, 2, p.Cursor())
	require.NoError(t, err)
	require.Empty(t, p.Edges)

	_, err = l.QueryPage(ctx, f, 2, "!")
	require.True(t, errors.Is(err, ledger.ErrInvalidCursor))
}

func TestLedger_FrozenClock(t *testing.T) {
	now := time.Unix(1, 0)
	l := New("addr", WithClock(ledger.NewClock(func() time.Time { return now })))

	for i := 0; i < 10; i++ {
		upload(t, l, "")
	}

	r, err := l.QueryByTags(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, r, 10)

	for i := 1; i < len(r); i++ {
		require.True(t, ledger.Before(r[i-1], r[i]))
	}
	require.Equal(t, 10, l.Len())
}

func TestLedger_Fund(t *testing.T) {
	l := New("addr", WithFunder(ledger.NewLocalFunder(10, 1)))

	p, err := l.Price(ctx, 8)
	require.NoError(t, err)
	require.NoError(t, l.Fund(ctx, p))
	require.True(t, errors.Is(l.Fund(ctx, p), ledger.ErrInsufficientBalance))
}
