package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the backend origin plus path prefix, e.g.
	// http://localhost:8080/api. Every request path is resolved under it.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,   default=true"`

	// PageSize is the page size requested for product and category listings.
	// CommentPageSize applies to product review listings.
	PageSize        int `env:"PAGE_SIZE,         default=50"`
	CommentPageSize int `env:"COMMENT_PAGE_SIZE, default=20"`

	Stripe StripeConfig
}

type StripeConfig struct {
	// APIKey authenticates the payment confirmer against Stripe. When empty
	// the console refuses to confirm payments and reports a configuration
	// error instead.
	APIKey string `env:"STRIPE_API_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
