// Package session holds the per-user navigation context.
//
// A session keeps the most recent article and restaurant result sets and the
// article collection currently being explored. It starts empty, is replaced per
// search and is discarded when the user leaves. One instance serves one user.
package session

import (
	"slices"
	"time"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
)

// ArticleSet is an ordered list of article collections from one search.
type ArticleSet = []*collection.Collection[article.Article]

// RestaurantSet is an ordered list of restaurant collections from one search.
type RestaurantSet = []*collection.Collection[restaurant.Restaurant]

// Session is the navigation context of a single user.
type Session struct {
	id          string
	createdAt   time.Time
	updatedAt   time.Time
	articles    ArticleSet
	restaurants RestaurantSet
	explored    int // index into articles, -1 when nothing is explored
}

// New creates an empty session.
func New(id string, now time.Time) *Session {
	return &Session{id: id, createdAt: now, updatedAt: now, explored: -1}
}

// Reconstruct creates a session from stored state (storage hydration).
// An out-of-range explored index is treated as nothing explored.
func Reconstruct(
	id string, createdAt, updatedAt time.Time,
	articles ArticleSet, restaurants RestaurantSet, explored int,
) *Session {
	if explored < 0 || explored >= len(articles) {
		explored = -1
	}
	return &Session{
		id:          id,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		articles:    articles,
		restaurants: restaurants,
		explored:    explored,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns the creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the time of the last state change.
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// Articles returns the current article set and whether one exists.
func (s *Session) Articles() (ArticleSet, bool) {
	return slices.Clone(s.articles), len(s.articles) > 0
}

// Restaurants returns the current restaurant set and whether one exists.
func (s *Session) Restaurants() (RestaurantSet, bool) {
	return slices.Clone(s.restaurants), len(s.restaurants) > 0
}

// SetArticles replaces the article set wholesale and forgets the explored collection.
func (s *Session) SetArticles(set ArticleSet, now time.Time) {
	s.articles = slices.Clone(set)
	s.explored = -1
	s.updatedAt = now
}

// SetRestaurants replaces the restaurant set wholesale.
func (s *Session) SetRestaurants(set RestaurantSet, now time.Time) {
	s.restaurants = slices.Clone(set)
	s.updatedAt = now
}

// Explore marks col as the opened article collection.
// It reports false when col is not part of the current article set.
func (s *Session) Explore(col *collection.Collection[article.Article], now time.Time) bool {
	idx := slices.Index(s.articles, col)
	if idx < 0 {
		return false
	}
	s.explored = idx
	s.updatedAt = now
	return true
}

// Explored returns the opened article collection and whether one exists.
func (s *Session) Explored() (*collection.Collection[article.Article], bool) {
	if s.explored < 0 {
		return nil, false
	}
	return s.articles[s.explored], true
}

// ExploredIndex returns the position of the explored collection, or -1.
func (s *Session) ExploredIndex() int { return s.explored }
