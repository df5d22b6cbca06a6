// Package search runs backend searches and aggregates the hits into result sets.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/qa"
	"github.com/kailas-cloud/cardex/internal/domain/session"
	"github.com/kailas-cloud/cardex/internal/logger"
	"github.com/kailas-cloud/cardex/internal/usecase/aggregate"
)

// Options tunes the backend requests.
type Options struct {
	Engine            article.Engine
	ArticleResults    int
	MinScore          float64
	RestaurantResults int
	Locations         []string
	QAResults         int
	QAReader          int
}

// Service handles article, restaurant and question searches.
type Service struct {
	articles    ArticleSearcher
	restaurants RestaurantSearcher
	answerer    Answerer
	opts        Options
}

// New creates a search service.
func New(articles ArticleSearcher, restaurants RestaurantSearcher, answerer Answerer, opts Options) *Service {
	if !opts.Engine.Valid() {
		opts.Engine = article.Mix
	}
	return &Service{articles: articles, restaurants: restaurants, answerer: answerer, opts: opts}
}

// SearchArticles queries the configured engine and groups hits scoring at least MinScore.
// A backend failure is reported as ErrNoResults, same as an empty response.
func (s *Service) SearchArticles(ctx context.Context, query string) (session.ArticleSet, error) {
	cards, err := s.articles.SearchArticles(ctx, s.opts.Engine, query, s.opts.Engine.RequestSize(s.opts.ArticleResults))
	if err != nil {
		logger.FromContext(ctx).Warn("Article search failed",
			zap.String("engine", string(s.opts.Engine)), zap.Error(err))
		cards = nil
	}

	set, err := aggregate.Aggregate(cards, aggregate.MinScore(s.opts.MinScore))
	if err != nil {
		return nil, fmt.Errorf("aggregate articles: %w", err)
	}
	if len(set) == 0 {
		return nil, domain.ErrNoResults
	}
	return set, nil
}

// SearchRestaurants queries the restaurant backend and groups every hit.
func (s *Service) SearchRestaurants(ctx context.Context, query string) (session.RestaurantSet, error) {
	cards, err := s.restaurants.SearchRestaurants(ctx, query, s.opts.RestaurantResults, s.opts.Locations)
	if err != nil {
		logger.FromContext(ctx).Warn("Restaurant search failed", zap.Error(err))
		cards = nil
	}

	set, err := aggregate.Aggregate(cards, aggregate.KeepAll())
	if err != nil {
		return nil, fmt.Errorf("aggregate restaurants: %w", err)
	}
	if len(set) == 0 {
		return nil, domain.ErrNoResults
	}
	return set, nil
}

// Answer asks the QA backend. Failures yield no answers.
func (s *Service) Answer(ctx context.Context, question string) []qa.Answer {
	answers, err := s.answerer.Answer(ctx, question, s.opts.QAResults, s.opts.QAReader)
	if err != nil {
		logger.FromContext(ctx).Warn("Question answering failed", zap.Error(err))
		return []qa.Answer{}
	}
	if answers == nil {
		return []qa.Answer{}
	}
	return answers
}
