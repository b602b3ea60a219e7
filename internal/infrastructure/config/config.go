package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Base URL candidates for the backend API, checked in order. The two
	// NEXT_PUBLIC-era names are kept so existing deployments keep working.
	APIURL         string `env:"API_URL"`
	NextPublicURL  string `env:"NEXT_PUBLIC_API_URL"`
	APIURLFallback string `env:"API_URL_FALLBACK, default=http://localhost:9090"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=15s"`
	LogLevel       string        `env:"LOG_LEVEL,       default=info"`

	State StateConfig
	Redis RedisConfig
	Mongo MongoConfig
	Stub  StubConfig
}

// StateConfig selects where the client persists its token/user/cart keys.
type StateConfig struct {
	// Backend is one of "file", "redis", "mongo".
	Backend string `env:"STATE_BACKEND, default=file"`
	// Dir is the directory used by the file backend. Empty means a
	// "storefront" directory under the user config dir.
	Dir string `env:"STATE_DIR"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=storefront"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=storefront"`
	Collection string `env:"MONGO_COLLECTION, default=client_state"`
}

// StubConfig configures the embedded development backend.
type StubConfig struct {
	Port      string `env:"STUB_PORT,       default=9090"`
	JWTSecret string `env:"STUB_JWT_SECRET, default=dev-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// BaseURL resolves the backend base URL: API_URL, then
// NEXT_PUBLIC_API_URL, then API_URL_FALLBACK.
func (c *Config) BaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if c.NextPublicURL != "" {
		return c.NextPublicURL
	}
	return c.APIURLFallback
}
