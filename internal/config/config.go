package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the cardex API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Backends BackendsConfig `yaml:"backends"`
	Session  SessionConfig  `yaml:"session"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// BackendsConfig holds the search, QA and entity linking endpoints.
type BackendsConfig struct {
	TimeoutSec   int               `yaml:"timeout_sec"` // 0 = transport default
	Articles     ArticlesConfig    `yaml:"articles"`
	QA           QAConfig          `yaml:"qa"`
	Restaurants  RestaurantsConfig `yaml:"restaurants"`
	EntityLinker LinkerConfig      `yaml:"entity_linker"`
}

// ArticlesConfig holds article search settings.
type ArticlesConfig struct {
	Engine     string            `yaml:"engine"`    // keyword, dense, mix (default: mix)
	Endpoints  map[string]string `yaml:"endpoints"` // engine -> URL
	NumResults int               `yaml:"num_results"`
	MinScore   *float64          `yaml:"min_score"`
}

// QAConfig holds question answering settings.
type QAConfig struct {
	Endpoint   string `yaml:"endpoint"`
	NumResults int    `yaml:"num_results"`
	NumReader  int    `yaml:"num_reader"`
}

// RestaurantsConfig holds restaurant search settings.
type RestaurantsConfig struct {
	Endpoint     string   `yaml:"endpoint"`
	NumResults   int      `yaml:"num_results"`
	LocationList []string `yaml:"location_list"`
}

// LinkerConfig holds entity linking settings.
type LinkerConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Threshold   float64 `yaml:"threshold"`
	Coref       *bool   `yaml:"coref"`
	CacheTTLSec int     `yaml:"cache_ttl_sec"` // valkey/redis drivers only
}

// SessionConfig holds session storage settings.
type SessionConfig struct {
	Driver           string   `yaml:"driver"` // memory, valkey, redis (default: memory)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	TTLSec           int      `yaml:"ttl_sec"`
	Capacity         int      `yaml:"capacity"` // memory driver only
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Timeout returns the per-request backend timeout.
func (b BackendsConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSec) * time.Second
}

// TTL returns how long an idle session is kept.
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLSec) * time.Second
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}

	a := &c.Backends.Articles
	if a.Engine == "" {
		a.Engine = "mix"
	}
	if a.NumResults <= 0 {
		a.NumResults = 20
	}
	if a.MinScore == nil {
		v := 0.65
		a.MinScore = &v
	}
	if c.Backends.QA.NumResults <= 0 {
		c.Backends.QA.NumResults = 10
	}
	if c.Backends.QA.NumReader <= 0 {
		c.Backends.QA.NumReader = 3
	}
	if c.Backends.Restaurants.NumResults <= 0 {
		c.Backends.Restaurants.NumResults = 10
	}
	if c.Backends.EntityLinker.Threshold <= 0 {
		c.Backends.EntityLinker.Threshold = 0.8
	}
	if c.Backends.EntityLinker.CacheTTLSec <= 0 {
		c.Backends.EntityLinker.CacheTTLSec = 86400
	}
	if c.Backends.EntityLinker.Coref == nil {
		v := true
		c.Backends.EntityLinker.Coref = &v
	}

	if c.Session.Driver == "" {
		c.Session.Driver = "memory"
	}
	if c.Session.TTLSec <= 0 {
		c.Session.TTLSec = 3600
	}
	if c.Session.Capacity <= 0 {
		c.Session.Capacity = 1024
	}
	if c.Session.KeyPrefix == "" {
		c.Session.KeyPrefix = "cardex:session:"
	}
	if c.Session.ReadinessTimeout <= 0 {
		c.Session.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	if err := c.Backends.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}

// Validate checks the backend settings.
func (b BackendsConfig) Validate() error {
	a := b.Articles
	switch a.Engine {
	case "keyword", "dense", "mix":
	default:
		return fmt.Errorf("backends.articles.engine must be \"keyword\", \"dense\" or \"mix\", got %q", a.Engine)
	}
	if a.Endpoints[a.Engine] == "" {
		return fmt.Errorf("backends.articles.endpoints.%s is required", a.Engine)
	}
	if a.MinScore != nil && *a.MinScore < 0 {
		return fmt.Errorf("backends.articles.min_score must be >= 0, got %v", *a.MinScore)
	}
	if b.QA.Endpoint == "" {
		return fmt.Errorf("backends.qa.endpoint is required")
	}
	if b.Restaurants.Endpoint == "" {
		return fmt.Errorf("backends.restaurants.endpoint is required")
	}
	if b.EntityLinker.Endpoint == "" {
		return fmt.Errorf("backends.entity_linker.endpoint is required")
	}
	if b.TimeoutSec < 0 {
		return fmt.Errorf("backends.timeout_sec must be >= 0, got %d", b.TimeoutSec)
	}
	return nil
}

// Validate checks the session storage settings.
func (s SessionConfig) Validate() error {
	switch s.Driver {
	case "memory":
	case "valkey", "redis":
		if len(s.Addrs) == 0 {
			return fmt.Errorf("session.addrs is required for driver %q", s.Driver)
		}
	default:
		return fmt.Errorf("session.driver must be \"memory\", \"valkey\" or \"redis\", got %q", s.Driver)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
