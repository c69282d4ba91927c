package badger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
)

var ctx = context.Background()

func open(t *testing.T, dir string) *Ledger {
	l, err := Open(dir, "addr", nil)
	require.NoError(t, err)

	return l
}

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
	l := open(t, "")
	defer l.Close() // nolint

	body := bytes.Repeat([]byte("compressible "), 100)
	r, err := l.Upload(ctx, body, ledger.Tags{{Name: "a", Value: "1"}})
	require.NoError(t, err)
	require.Equal(t, "addr", r.Address)

	b, err := l.GetData(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, body, b)

	b, err = l.GetData(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, b)

	empty := upload(t, l, "")
	b, err = l.GetData(ctx, empty.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Empty(t, b)

	owner, err := l.Owner(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "addr", owner)

	_, err = l.Owner(ctx, "missing")
	require.True(t, errors.Is(err, ledger.ErrNotFound))
}

func TestLedger_Query(t *testing.T) {
	l := open(t, "")
	defer l.Close() // nolint

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

	r, err := l.QueryByTags(ctx, f, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID, c.ID, b.ID, a.ID}, ids(r))

	r, err = l.QueryByTags(ctx, f, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID, c.ID, b.ID}, ids(r))

	r, err = l.QueryByIDs(ctx, []string{a.ID, "missing", c.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID}, ids(r))

	_, err = l.QueryPage(ctx, f, 2, "!")
	require.True(t, errors.Is(err, ledger.ErrInvalidCursor))
}

func TestLedger_Reopen(t *testing.T) {
	dir := t.TempDir()

	l := open(t, dir)
	a := upload(t, l, "a", ledger.Tag{Name: "k", Value: "v"})
	require.NoError(t, l.Close())

	l = open(t, dir)
	defer l.Close() // nolint

	b := upload(t, l, "b", ledger.Tag{Name: "k", Value: "v"})
	require.Greater(t, b.Timestamp, a.Timestamp)

	r, err := l.QueryByTags(ctx, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, a.ID}, ids(r))
	require.Equal(t, ledger.Tags{{Name: "k", Value: "v"}}, r[1].Tags)

	body, err := l.GetData(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("a"), body)
}

func TestOrderKey(t *testing.T) {
	k := orderKey(42, "id")
	ts, id := parseOrderKey(k)
	require.Equal(t, int64(42), ts)
	require.Equal(t, "id", id)

	require.True(t, bytes.Compare(orderKey(43, "z"), orderKey(42, "a")) < 0)
	require.True(t, bytes.Compare(orderKey(42, "a"), orderKey(42, "b")) < 0)
}
