package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures process-level configuration. Everything is environment
// driven; defaults suit local development against docker-compose services.
type Config struct {
	Addr     string `env:"ASSURE_ADDR" envDefault:":8080"`
	LogLevel string `env:"ASSURE_LOG_LEVEL" envDefault:"info"`

	// DatabaseURL is the postgres DSN. Empty means in-memory stores, which is
	// enough for local experiments and the test suite.
	DatabaseURL string `env:"ASSURE_DATABASE_URL"`

	// AdminToken guards mutating entity routes. Empty disables those routes
	// rather than leaving them open.
	AdminToken string `env:"ASSURE_ADMIN_TOKEN"`

	// RedisURL enables the reference-data cache when set.
	RedisURL string `env:"ASSURE_REDIS_URL"`
	// ReferenceCacheTTL bounds staleness of cached standards/professions.
	ReferenceCacheTTL time.Duration `env:"ASSURE_REFERENCE_CACHE_TTL" envDefault:"30s"`

	// KafkaBrokers enables the assessment history change feed when non-empty.
	KafkaBrokers []string `env:"ASSURE_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"ASSURE_KAFKA_TOPIC" envDefault:"assessment-history"`

	ShutdownTimeout time.Duration `env:"ASSURE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"ASSURE_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
