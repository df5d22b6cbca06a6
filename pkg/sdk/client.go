package cardex

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/app"
	"github.com/kailas-cloud/cardex/internal/config"
	"github.com/kailas-cloud/cardex/internal/domain/session"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
)

// commandUseCase is the internal interface for session commands.
type commandUseCase interface {
	Start(ctx context.Context) (*session.Session, error)
	End(ctx context.Context, id string) error
	Describe(ctx context.Context, id string) (commanduc.Snapshot, error)
	Handle(ctx context.Context, id, raw string) (commanduc.Outcome, error)
}

// Client is the cardex SDK client.
// Safe for concurrent use. Commands on the same session run one at a time.
type Client struct {
	commands  commandUseCase
	healthSvc healthUseCase
	obs       *observer
	close     func()
}

// New creates a cardex client. Article, QA, restaurant and entity linking
// endpoints are required.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	full, err := cfg.build()
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, fmt.Errorf("cardex: %w", err)
	}

	stores, err := app.NewStores(ctx, full.Session, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("cardex: %w", err)
	}

	return &Client{
		commands:  app.NewCommandService(full.Backends, stores, zap.NewNop()),
		healthSvc: app.NewHealthService(stores),
		obs:       obs,
		close:     stores.Close,
	}, nil
}

// build turns the options into a validated service configuration.
func (c *clientConfig) build() (config.Config, error) {
	endpoints := make(map[string]string, len(c.endpoints))
	for engine, url := range c.endpoints {
		endpoints[string(engine)] = url
	}

	var full config.Config
	full.Backends.TimeoutSec = int(c.timeout / time.Second)
	full.Backends.Articles.Engine = string(c.engine)
	full.Backends.Articles.Endpoints = endpoints
	full.Backends.QA.Endpoint = c.qa
	full.Backends.Restaurants.Endpoint = c.restaurants
	full.Backends.Restaurants.LocationList = c.locations
	full.Backends.EntityLinker.Endpoint = c.linker
	full.Session.Driver = c.driver
	full.Session.Addrs = c.addrs
	full.Session.Password = c.password
	full.Session.Capacity = c.capacity
	full.Session.TTLSec = int(c.ttl / time.Second)
	full.ApplyDefaults()

	if err := full.Backends.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("cardex: %w", err)
	}
	if err := full.Session.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("cardex: %w", err)
	}
	return full, nil
}

// Start opens a new empty session and returns its id.
func (c *Client) Start(ctx context.Context) (string, error) {
	start := time.Now()
	sess, err := c.commands.Start(ctx)
	c.obs.observe("session.start", start, err)
	if err != nil {
		return "", err
	}
	return sess.ID(), nil
}

// Run executes one line of user input against the session with id.
func (c *Client) Run(ctx context.Context, id, input string) (Result, error) {
	start := time.Now()
	out, err := c.commands.Handle(ctx, id, input)
	c.obs.observe("command."+out.Command.Kind.String(), start, err, "session", id)
	if err != nil {
		return Result{}, err
	}
	return resultFromOutcome(out), nil
}

// Describe reports what the session with id holds.
func (c *Client) Describe(ctx context.Context, id string) (Session, error) {
	start := time.Now()
	snap, err := c.commands.Describe(ctx, id)
	c.obs.observe("session.describe", start, err, "session", id)
	if err != nil {
		return Session{}, err
	}
	return sessionFromSnapshot(snap), nil
}

// End discards the session with id.
func (c *Client) End(ctx context.Context, id string) error {
	start := time.Now()
	err := c.commands.End(ctx, id)
	c.obs.observe("session.end", start, err, "session", id)
	return err
}

// Close releases the session store connection.
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}
