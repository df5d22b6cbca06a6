// Package session persists navigation sessions.
package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kailas-cloud/cardex/internal/domain"
	domsess "github.com/kailas-cloud/cardex/internal/domain/session"
)

// MemoryStore keeps sessions in a bounded in-process LRU with a TTL.
// Sessions are held by pointer, so opened cards keep their enrichment without a Save.
type MemoryStore struct {
	cache *expirable.LRU[string, *domsess.Session]
}

// NewMemoryStore creates a store holding at most capacity sessions for ttl each.
// A non-positive ttl disables expiry.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryStore{cache: expirable.NewLRU[string, *domsess.Session](capacity, nil, ttl)}
}

// Get returns the session with id.
func (m *MemoryStore) Get(_ context.Context, id string) (*domsess.Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Save stores s and restarts its TTL.
func (m *MemoryStore) Save(_ context.Context, s *domsess.Session) error {
	m.cache.Add(s.ID(), s)
	return nil
}

// Delete removes the session with id.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	if !m.cache.Remove(id) {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int { return m.cache.Len() }

// Ping always succeeds.
func (m *MemoryStore) Ping(_ context.Context) error { return nil }
