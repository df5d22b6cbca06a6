// Package navigate resolves explore and open commands against a session.
package navigate

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
	"github.com/kailas-cloud/cardex/internal/domain/session"
)

// Service navigates the result sets stored in a session.
type Service struct {
	linker      Linker
	enrichTotal *prometheus.CounterVec
	now         func() time.Time
}

// New creates a navigation service.
// enrichTotal is a counter vec with label "result" ("linked"/"empty"/"cached"), may be nil.
func New(linker Linker, enrichTotal *prometheus.CounterVec) *Service {
	return &Service{linker: linker, enrichTotal: enrichTotal, now: time.Now}
}

// ExploreArticles opens the article collection referenced by arg and remembers it in sess.
func (s *Service) ExploreArticles(
	sess *session.Session, arg string,
) (*collection.Collection[article.Article], error) {
	set, ok := sess.Articles()
	if !ok {
		return nil, fmt.Errorf("no article results to explore: %w", domain.ErrNoSessionState)
	}
	col, err := ResolveCategory(arg, set)
	if err != nil {
		return nil, err
	}
	sess.Explore(col, s.now())
	return col, nil
}

// OpenArticle returns the card at the index in arg within the explored collection
// and materializes its related concepts on first open.
func (s *Service) OpenArticle(
	ctx context.Context, sess *session.Session, arg string,
) (*card.Card[article.Article], error) {
	col, ok := sess.Explored()
	if !ok {
		return nil, fmt.Errorf("no explored collection to open: %w", domain.ErrNoSessionState)
	}
	c, err := ResolveLeaf(arg, col.Cards())
	if err != nil {
		return nil, err
	}

	if c.EnrichmentState() != card.Unmaterialized {
		s.incEnrich("cached")
		return c, nil
	}
	c.Enrich(ctx, s.linker)
	s.incEnrich(c.EnrichmentState().String())
	return c, nil
}

// ExploreRestaurants returns the restaurant collection referenced by arg.
func (s *Service) ExploreRestaurants(
	sess *session.Session, arg string,
) (*collection.Collection[restaurant.Restaurant], error) {
	set, ok := sess.Restaurants()
	if !ok {
		return nil, fmt.Errorf("no restaurant results to explore: %w", domain.ErrNoSessionState)
	}
	return ResolveCategory(arg, set)
}

// OpenRestaurant is not supported.
func (s *Service) OpenRestaurant(_ *session.Session, _ string) (*card.Card[restaurant.Restaurant], error) {
	return nil, fmt.Errorf("opening restaurant cards: %w", domain.ErrUnsupported)
}

func (s *Service) incEnrich(result string) {
	if s.enrichTotal != nil {
		s.enrichTotal.WithLabelValues(result).Inc()
	}
}
