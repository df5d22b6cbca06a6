// Package command dispatches user input against a stored session.
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	domcmd "github.com/kailas-cloud/cardex/internal/domain/command"
	"github.com/kailas-cloud/cardex/internal/domain/qa"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
	"github.com/kailas-cloud/cardex/internal/domain/session"
	"github.com/kailas-cloud/cardex/internal/logger"
)

// Outcome is the result of one command. Only the fields of the command's kind are set.
type Outcome struct {
	Command domcmd.Command

	// Search.
	Answers     []qa.Answer
	Articles    session.ArticleSet
	Restaurants session.RestaurantSet
	NoResults   bool

	// Explore.
	ArticleCollection    *collection.Collection[article.Article]
	RestaurantCollection *collection.Collection[restaurant.Restaurant]

	// Open. Concepts is a copy taken while the session was held.
	Opened   *card.Card[article.Article]
	Concepts []card.Concept
}

// Snapshot describes what a session currently holds.
type Snapshot struct {
	ID                   string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ArticleCategories    []string
	RestaurantCategories []string
	Explored             string
	HasExplored          bool
}

// Service runs commands one at a time per session.
type Service struct {
	sessions    Sessions
	search      Searcher
	nav         Navigator
	commandsTot *prometheus.CounterVec
	locks       *keyedMutex
	newID       func() string
	now         func() time.Time
}

// New creates a command service.
// commandsTotal is a counter vec with labels kind and outcome, may be nil.
func New(sessions Sessions, search Searcher, nav Navigator, commandsTotal *prometheus.CounterVec) *Service {
	return &Service{
		sessions:    sessions,
		search:      search,
		nav:         nav,
		commandsTot: commandsTotal,
		locks:       newKeyedMutex(),
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// Start creates and stores an empty session.
func (s *Service) Start(ctx context.Context) (*session.Session, error) {
	sess := session.New(s.newID(), s.now())
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	logger.FromContext(ctx).Debug("Session started", zap.String("session", sess.ID()))
	return sess, nil
}

// End discards the session with id.
func (s *Service) End(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Describe reports what the session with id holds.
func (s *Service) Describe(ctx context.Context, id string) (Snapshot, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get session: %w", err)
	}

	snap := Snapshot{ID: sess.ID(), CreatedAt: sess.CreatedAt(), UpdatedAt: sess.UpdatedAt()}
	arts, _ := sess.Articles()
	for _, c := range arts {
		snap.ArticleCategories = append(snap.ArticleCategories, c.Key())
	}
	rests, _ := sess.Restaurants()
	for _, c := range rests {
		snap.RestaurantCategories = append(snap.RestaurantCategories, c.Key())
	}
	if col, ok := sess.Explored(); ok {
		snap.Explored = col.Key()
		snap.HasExplored = true
	}
	return snap, nil
}

// Handle parses raw and runs it against the session with id.
func (s *Service) Handle(ctx context.Context, id, raw string) (Outcome, error) {
	cmd := domcmd.Parse(raw)
	ctx = logger.With(ctx, zap.String("session", id), zap.String("command", cmd.Kind.String()))
	out, err := s.handle(ctx, id, cmd)
	s.count(cmd.Kind, out, err)
	return out, err
}

func (s *Service) handle(ctx context.Context, id string, cmd domcmd.Command) (Outcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Outcome{Command: cmd}, fmt.Errorf("get session: %w", err)
	}

	out := Outcome{Command: cmd}
	dirty := false

	switch cmd.Kind {
	case domcmd.Empty:
		return out, nil

	case domcmd.SearchArticles:
		if cmd.Question {
			out.Answers = s.search.Answer(ctx, cmd.Arg)
		}
		set, err := s.search.SearchArticles(ctx, cmd.Arg)
		if errors.Is(err, domain.ErrNoResults) {
			out.NoResults = true
			return out, nil
		}
		if err != nil {
			return out, err
		}
		sess.SetArticles(set, s.now())
		out.Articles = set
		dirty = true

	case domcmd.SearchRestaurants:
		if cmd.Arg == "" {
			return out, fmt.Errorf("empty restaurant query: %w", domain.ErrInvalidQuery)
		}
		set, err := s.search.SearchRestaurants(ctx, cmd.Arg)
		if errors.Is(err, domain.ErrNoResults) {
			out.NoResults = true
			return out, nil
		}
		if err != nil {
			return out, err
		}
		sess.SetRestaurants(set, s.now())
		out.Restaurants = set
		dirty = true

	case domcmd.ExploreArticles:
		col, err := s.nav.ExploreArticles(sess, cmd.Arg)
		if err != nil {
			return out, err
		}
		out.ArticleCollection = col
		dirty = true

	case domcmd.OpenArticle:
		c, err := s.nav.OpenArticle(ctx, sess, cmd.Arg)
		if err != nil {
			return out, err
		}
		out.Opened = c
		out.Concepts = c.Concepts()
		dirty = true

	case domcmd.ExploreRestaurants:
		col, err := s.nav.ExploreRestaurants(sess, cmd.Arg)
		if err != nil {
			return out, err
		}
		out.RestaurantCollection = col

	case domcmd.OpenRestaurant:
		if _, err := s.nav.OpenRestaurant(sess, cmd.Arg); err != nil {
			return out, err
		}

	default:
		return out, fmt.Errorf("command kind %q: %w", cmd.Kind, domain.ErrUnsupported)
	}

	if dirty {
		if err := s.sessions.Save(ctx, sess); err != nil {
			return out, fmt.Errorf("save session: %w", err)
		}
	}
	return out, nil
}

func (s *Service) count(kind domcmd.Kind, out Outcome, err error) {
	if s.commandsTot == nil {
		return
	}
	s.commandsTot.WithLabelValues(kind.String(), outcomeLabel(out, err)).Inc()
}

func outcomeLabel(out Outcome, err error) string {
	switch {
	case err == nil && out.NoResults:
		return "no_results"
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, domain.ErrNoSessionState):
		return "no_session_state"
	case errors.Is(err, domain.ErrUnsupported):
		return "unsupported"
	default:
		return "error"
	}
}
