package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	RedisURL       string        `env:"REDIS_URL" envDefault:"localhost:6379"`
	Port           string        `env:"PORT" envDefault:"8080"`
	FrontendURL    string        `env:"FRONTEND_URL"`
	CrawlBatchSize int           `env:"CRAWL_BATCH_SIZE" envDefault:"3"`
	CrawlInterval  time.Duration `env:"CRAWL_INTERVAL" envDefault:"6h"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
}

// Load reads .env if present and parses the environment into a Config.
// A missing DATABASE_URL is an error: the pipeline refuses to run
// against an unreachable store.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
