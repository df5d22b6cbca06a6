package cardex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine selects the article search endpoint.
type Engine string

// Article search engines.
const (
	EngineKeyword Engine = "keyword"
	EngineDense   Engine = "dense"
	EngineMix     Engine = "mix"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "memory", "valkey" or "redis"
	addrs    []string
	password string
	capacity int
	ttl      time.Duration

	engine      Engine
	endpoints   map[Engine]string
	qa          string
	restaurants string
	linker      string
	locations   []string
	timeout     time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		driver:    "memory",
		engine:    EngineMix,
		endpoints: map[Engine]string{},
	}
}

// WithMemory keeps sessions in process, at most capacity of them.
// This is the default.
func WithMemory(capacity int) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
		c.capacity = capacity
	})
}

// WithValkey configures the client to keep sessions in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to keep sessions in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSessionTTL sets how long an idle session is kept. Default: 1h.
func WithSessionTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.ttl = ttl
	})
}

// WithArticleEndpoint registers the URL of an article search engine.
// The first registered engine becomes the active one unless WithEngine is given.
func WithArticleEndpoint(engine Engine, url string) Option {
	return optionFunc(func(c *clientConfig) {
		if len(c.endpoints) == 0 {
			c.engine = engine
		}
		c.endpoints[engine] = url
	})
}

// WithEngine selects the active article search engine. Default: mix.
func WithEngine(engine Engine) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine = engine
	})
}

// WithQAEndpoint sets the question answering backend URL.
func WithQAEndpoint(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.qa = url
	})
}

// WithRestaurantEndpoint sets the restaurant search backend URL and the
// locations it is restricted to.
func WithRestaurantEndpoint(url string, locations ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.restaurants = url
		c.locations = locations
	})
}

// WithEntityLinker sets the entity linking backend URL.
func WithEntityLinker(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.linker = url
	})
}

// WithTimeout bounds each backend request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
