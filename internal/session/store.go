// Package session provides the server-side session layer: pluggable
// session backends (in-process and Redis), the cookie jar abstraction over
// one request/response pair, and the trust manager that owns the
// authenticated-identity keys inside a session.
package session

import (
	"context"
	"time"
)

// Store is the server-side state of a single session. Implementations are
// handed out per request by a [Server] and are not safe for use after the
// request that opened them completes.
type Store interface {
	// ID returns the current session identifier. It changes when
	// RegenerateID succeeds.
	ID() string

	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// RegenerateID assigns a fresh identifier to the session while keeping
	// its contents. The old identifier stops resolving immediately.
	RegenerateID(ctx context.Context) error

	// Destroy removes the session record entirely.
	Destroy(ctx context.Context) error
}

// Server opens sessions by identifier.
type Server interface {
	// Open returns the session with the given identifier. An empty or
	// unknown identifier yields a fresh empty session under a new
	// identifier.
	Open(ctx context.Context, id string) (Store, error)
}

// syncedStore keeps the session cookie in step with the session identifier.
// Cookies can only be written before the handler starts the response body,
// so identifier changes must reach the jar the moment they happen.
type syncedStore struct {
	Store

	jar  Jar
	name string
	ttl  time.Duration
}

// WithCookieSync wraps a [Store] so that RegenerateID re-sets the session
// cookie and Destroy clears it.
func WithCookieSync(s Store, jar Jar, cookieName string, ttl time.Duration) Store {
	return &syncedStore{Store: s, jar: jar, name: cookieName, ttl: ttl}
}

func (s *syncedStore) RegenerateID(ctx context.Context) error {
	if err := s.Store.RegenerateID(ctx); err != nil {
		return err
	}

	s.jar.Set(s.name, s.Store.ID(), s.ttl)
	return nil
}

func (s *syncedStore) Destroy(ctx context.Context) error {
	if err := s.Store.Destroy(ctx); err != nil {
		return err
	}

	s.jar.Clear(s.name)
	return nil
}
