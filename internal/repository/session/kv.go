package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/cardex/internal/db"
	"github.com/kailas-cloud/cardex/internal/domain"
	domsess "github.com/kailas-cloud/cardex/internal/domain/session"
)

const (
	// DefaultKeyPrefix namespaces session keys.
	DefaultKeyPrefix = "cardex:session:"
	// DefaultCapacity bounds the in-memory store.
	DefaultCapacity = 1024
	// DefaultTTL is how long an idle session lives.
	DefaultTTL = time.Hour
)

// store is the consumer interface for the key/value backend (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

// KVStore keeps sessions as JSON documents in Valkey or Redis.
type KVStore struct {
	store  store
	prefix string
	ttl    time.Duration
}

// NewKVStore creates a key/value backed session store.
func NewKVStore(s store, prefix string, ttl time.Duration) *KVStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &KVStore{store: s, prefix: prefix, ttl: ttl}
}

// Get loads and rebuilds the session with id.
func (r *KVStore) Get(ctx context.Context, id string) (*domsess.Session, error) {
	key := r.key(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	s, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("rebuild session %s: %w", id, err)
	}
	return s, nil
}

// Save writes s and restarts its TTL.
func (r *KVStore) Save(ctx context.Context, s *domsess.Session) error {
	data, err := json.Marshal(newSessionDoc(s))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	key := r.key(s.ID())
	if err := r.store.SetWithTTL(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the session with id.
func (r *KVStore) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	existed, err := r.store.Del(ctx, key)
	if err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if !existed {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Ping checks the backend.
func (r *KVStore) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *KVStore) key(id string) string {
	return r.prefix + id
}
