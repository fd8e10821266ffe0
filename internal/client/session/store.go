// Package session holds the credential store used by the API client: the
// access/refresh token pair for the current user.
//
// The store is the only place tokens are read from. The API client is its
// sole writer: it sets credentials after login, registration and refresh,
// and clears them on logout or when the refresh protocol is exhausted.
package session

import (
	"context"
	"sync"
)

// Credentials is the pair of opaque bearer tokens for one session.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// IsZero reports whether no token is held.
func (c Credentials) IsZero() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Store persists the current Credentials. Set replaces both tokens; there is
// never more than one pair.
type Store interface {
	Get(ctx context.Context) (Credentials, error)
	Set(ctx context.Context, c Credentials) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps credentials in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	creds Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds, nil
}

func (m *MemoryStore) Set(ctx context.Context, c Credentials) error {
	m.mu.Lock()
	m.creds = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.creds = Credentials{}
	m.mu.Unlock()
	return nil
}
