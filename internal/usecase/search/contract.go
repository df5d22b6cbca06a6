package search

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/qa"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
)

// ArticleSearcher queries the article search backend.
type ArticleSearcher interface {
	SearchArticles(
		ctx context.Context, engine article.Engine, query string, numResults int,
	) ([]*card.Card[article.Article], error)
}

// RestaurantSearcher queries the restaurant search backend.
type RestaurantSearcher interface {
	SearchRestaurants(
		ctx context.Context, query string, numResults int, locations []string,
	) ([]*card.Card[restaurant.Restaurant], error)
}

// Answerer queries the question answering backend.
type Answerer interface {
	Answer(ctx context.Context, question string, numResults, numReader int) ([]qa.Answer, error)
}
