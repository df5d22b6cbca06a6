// Package conceptcache caches entity linking results in a key/value store.
package conceptcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/db"
	"github.com/kailas-cloud/cardex/internal/domain/card"
)

// DefaultKeyPrefix namespaces cached concept lists.
const DefaultKeyPrefix = "cardex:concepts:"

// DefaultTTL is how long a cached concept list is kept.
const DefaultTTL = 24 * time.Hour

// store is the consumer interface for the concept cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedLinker caches concept lists of a card.Linker by text.
// Only successful links are cached; an empty list is a valid entry.
type CachedLinker struct {
	inner      card.Linker
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner card.Linker,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedLinker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedLinker{
		inner:      inner,
		store:      s,
		prefix:     DefaultKeyPrefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

type conceptDoc struct {
	Title string `json:"title"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Link returns cached concepts or calls the inner linker.
func (c *CachedLinker) Link(ctx context.Context, text string) ([]card.Concept, error) {
	key := c.cacheKey(text)

	if concepts, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return concepts, nil
	}

	c.incCache("miss")

	concepts, err := c.inner.Link(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("link text: %w", err)
	}

	c.putToCache(ctx, key, concepts)
	return concepts, nil
}

func (c *CachedLinker) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedLinker) cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return c.prefix + hex.EncodeToString(h[:])
}

func (c *CachedLinker) getFromCache(ctx context.Context, key string) ([]card.Concept, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached concepts", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var docs []conceptDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		c.logger.Warn("Failed to parse cached concepts", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	concepts := make([]card.Concept, len(docs))
	for i, d := range docs {
		concepts[i] = card.Concept(d)
	}
	return concepts, true
}

func (c *CachedLinker) putToCache(ctx context.Context, key string, concepts []card.Concept) {
	docs := make([]conceptDoc, len(concepts))
	for i, cc := range concepts {
		docs[i] = conceptDoc(cc)
	}
	data, err := json.Marshal(docs)
	if err != nil {
		c.logger.Warn("Failed to encode concepts", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache concepts", zap.String("key", key), zap.Error(err))
	}
}
