package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger/memory"
	"github.com/Decentr-net/quill/internal/schema"
)

var app = schema.App{Name: "quill", Version: "1"}

type pingingLedger struct {
	*memory.Ledger
	err error
}

func (p pingingLedger) Ping(context.Context) error {
	return p.err
}

func TestConnect(t *testing.T) {
	s, err := Connect(context.Background(), app, memory.New("addr"))
	require.NoError(t, err)
	require.Equal(t, app, s.App())

	r, err := s.Reader()
	require.NoError(t, err)
	require.NotNil(t, r)

	w, err := s.Writer()
	require.NoError(t, err)
	require.NotNil(t, w)

	s.Close()

	_, err = s.Reader()
	require.True(t, errors.Is(err, ErrNotConnected))
	_, err = s.Writer()
	require.True(t, errors.Is(err, ErrNotConnected))
}

func TestConnect_PingFailed(t *testing.T) {
	_, err := Connect(context.Background(), app, pingingLedger{Ledger: memory.New("addr"), err: context.Canceled})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestConnectReader(t *testing.T) {
	s, err := ConnectReader(context.Background(), app, memory.New("addr"))
	require.NoError(t, err)

	_, err = s.Reader()
	require.NoError(t, err)

	_, err = s.Writer()
	require.True(t, errors.Is(err, ErrNotConnected))

	_, err = ConnectReader(context.Background(), app, nil)
	require.True(t, errors.Is(err, ErrNotConnected))
}

func TestNilSession(t *testing.T) {
	var s *Session

	_, err := s.Reader()
	require.True(t, errors.Is(err, ErrNotConnected))
	_, err = s.Writer()
	require.True(t, errors.Is(err, ErrNotConnected))
	require.Equal(t, schema.App{}, s.App())
	s.Close()
}
