package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer records lifecycle calls. Bind returns BindErr. ListenAndServe
// returns ListenErr, or http.ErrServerClosed when ListenErr is nil, mimicking a
// server that was shut down.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	BindErr     error
	ListenErr   error
	ShutdownErr error

	mu            sync.Mutex
	BindCalls     int
	ListenCalls   int
	ShutdownCalls int
}

func (s *StubHTTPServer) Bind() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BindCalls++
	return s.BindErr
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.ListenCalls++
	s.mu.Unlock()
	if s.ListenErr != nil {
		return s.ListenErr
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// Calls returns the listen and shutdown counts under the stub's lock.
func (s *StubHTTPServer) Calls() (listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ListenCalls, s.ShutdownCalls
}

// BlockingHTTPServer allows simulating a shutdown that waits on an unblock channel.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}
