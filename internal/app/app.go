// Package app assembles the services shared by the HTTP server and the terminal client.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/config"
	"github.com/kailas-cloud/cardex/internal/db"
	dbValkey "github.com/kailas-cloud/cardex/internal/db/valkey"
	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/metrics"
	"github.com/kailas-cloud/cardex/internal/repository/conceptcache"
	sessionrepo "github.com/kailas-cloud/cardex/internal/repository/session"
	"github.com/kailas-cloud/cardex/internal/transport/backend"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
	navigateuc "github.com/kailas-cloud/cardex/internal/usecase/navigate"
	searchuc "github.com/kailas-cloud/cardex/internal/usecase/search"
)

// SessionStore is what the command and health services need from session persistence.
type SessionStore interface {
	commanduc.Sessions
	healthuc.Pinger
}

// Stores holds the persistence selected by the session driver.
// KV is nil for the memory driver.
type Stores struct {
	Sessions SessionStore
	KV       db.KVStore
	Close    func()
}

// NewStores selects the session repository for the configured driver.
// valkey and redis share the rueidis client.
func NewStores(ctx context.Context, cfg config.SessionConfig, logger *zap.Logger) (Stores, error) {
	switch cfg.Driver {
	case "memory":
		logger.Info("Using in-memory session store", zap.Int("capacity", cfg.Capacity))
		return Stores{Sessions: sessionrepo.NewMemoryStore(cfg.Capacity, cfg.TTL()), Close: func() {}}, nil
	case "valkey", "redis":
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return Stores{}, fmt.Errorf("connect %s: %w", cfg.Driver, err)
		}
		if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
			store.Close()
			return Stores{}, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
		}
		logger.Info("Connected to session store", zap.Strings("addrs", cfg.Addrs))
		return Stores{
			Sessions: sessionrepo.NewKVStore(store, cfg.KeyPrefix, cfg.TTL()),
			KV:       store,
			Close:    store.Close,
		}, nil
	default:
		return Stores{}, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}

// NewCommandService wires the backend clients into the search, navigation and command services.
// Linking results are cached in stores.KV when it is set.
func NewCommandService(cfg config.BackendsConfig, stores Stores, logger *zap.Logger) *commanduc.Service {
	opts := backend.Options{
		Timeout:         cfg.Timeout(),
		RequestsTotal:   metrics.BackendRequestsTotal,
		RequestDuration: metrics.BackendRequestDuration,
	}

	endpoints := make(map[article.Engine]string, len(cfg.Articles.Endpoints))
	for engine, url := range cfg.Articles.Endpoints {
		endpoints[article.Engine(engine)] = url
	}

	searchSvc := searchuc.New(
		backend.NewArticleClient(endpoints, opts),
		backend.NewRestaurantClient(cfg.Restaurants.Endpoint, opts),
		backend.NewQAClient(cfg.QA.Endpoint, opts),
		searchuc.Options{
			Engine:            article.Engine(cfg.Articles.Engine),
			ArticleResults:    cfg.Articles.NumResults,
			MinScore:          *cfg.Articles.MinScore,
			RestaurantResults: cfg.Restaurants.NumResults,
			Locations:         cfg.Restaurants.LocationList,
			QAResults:         cfg.QA.NumResults,
			QAReader:          cfg.QA.NumReader,
		},
	)

	var linker navigateuc.Linker = backend.NewLinkerClient(cfg.EntityLinker.Endpoint, cfg.EntityLinker.Threshold,
		*cfg.EntityLinker.Coref, opts)
	if stores.KV != nil {
		ttl := time.Duration(cfg.EntityLinker.CacheTTLSec) * time.Second
		linker = conceptcache.New(linker, stores.KV, ttl, metrics.ConceptCacheTotal, logger)
	}
	navSvc := navigateuc.New(linker, metrics.EnrichmentTotal)

	return commanduc.New(stores.Sessions, searchSvc, navSvc, metrics.CommandsTotal)
}

// NewHealthService checks the session store and, when one is wired, the concept cache.
// The concept cache is optional: its failure only degrades the report.
func NewHealthService(stores Stores) *healthuc.Service {
	svc := healthuc.New(stores.Sessions)
	if p, ok := stores.KV.(healthuc.Pinger); ok {
		svc.WithOptional("concept_cache", p)
	}
	return svc
}
