package command

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/qa"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
	"github.com/kailas-cloud/cardex/internal/domain/session"
)

// Sessions persists navigation sessions.
type Sessions interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id string) error
}

// Searcher runs backend searches.
type Searcher interface {
	SearchArticles(ctx context.Context, query string) (session.ArticleSet, error)
	SearchRestaurants(ctx context.Context, query string) (session.RestaurantSet, error)
	Answer(ctx context.Context, question string) []qa.Answer
}

// Navigator resolves explore and open commands.
type Navigator interface {
	ExploreArticles(sess *session.Session, arg string) (*collection.Collection[article.Article], error)
	OpenArticle(ctx context.Context, sess *session.Session, arg string) (*card.Card[article.Article], error)
	ExploreRestaurants(sess *session.Session, arg string) (*collection.Collection[restaurant.Restaurant], error)
	OpenRestaurant(sess *session.Session, arg string) (*card.Card[restaurant.Restaurant], error)
}
