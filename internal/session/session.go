// Package session contains an established connection to a ledger.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
)

// ErrNotConnected is returned when session is not established, closed or lacks capability.
var ErrNotConnected = errors.New("not connected")

// Pinger checks ledger availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Session is a connection to a ledger. It is safe for concurrent use.
type Session struct {
	app schema.App

	mu     sync.RWMutex
	r      ledger.Reader
	w      ledger.Writer
	closed bool
}

// Connect establishes session with read and write capabilities.
func Connect(ctx context.Context, app schema.App, l ledger.Ledger) (*Session, error) {
	return connect(ctx, app, l, l)
}

// ConnectReader establishes read-only session.
func ConnectReader(ctx context.Context, app schema.App, r ledger.Reader) (*Session, error) {
	return connect(ctx, app, r, nil)
}

func connect(ctx context.Context, app schema.App, r ledger.Reader, w ledger.Writer) (*Session, error) {
	if r == nil {
		return nil, ErrNotConnected
	}

	if p, ok := r.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return nil, err
		}
	}

	return &Session{
		app: app,
		r:   r,
		w:   w,
	}, nil
}

// App returns application namespace of session.
func (s *Session) App() schema.App {
	if s == nil {
		return schema.App{}
	}

	return s.app
}

// Reader returns read capability.
func (s *Session) Reader() (ledger.Reader, error) {
	if s == nil {
		return nil, ErrNotConnected
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrNotConnected
	}

	return s.r, nil
}

// Writer returns write capability.
func (s *Session) Writer() (ledger.Writer, error) {
	if s == nil {
		return nil, ErrNotConnected
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed || s.w == nil {
		return nil, ErrNotConnected
	}

	return s.w, nil
}

// Close closes session. Underlying ledger is not closed.
func (s *Session) Close() {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
