package fleeks

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings sourced from the environment.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string `envconfig:"FLEEKS_API_KEY" required:"true"`

	// BaseURL overrides the production API root.
	BaseURL string `envconfig:"FLEEKS_BASE_URL"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `envconfig:"FLEEKS_TIMEOUT" default:"30s"`

	// MaxRetries bounds retry attempts for 5xx responses.
	MaxRetries int `envconfig:"FLEEKS_MAX_RETRIES" default:"3"`

	// Debug enables request-level debug logging.
	Debug bool `envconfig:"FLEEKS_DEBUG"`
}

// LoadConfig reads configuration from the environment. A .env file in
// the working directory is loaded first if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// NewClientFromEnv builds a client from environment configuration.
// Extra options are applied after the environment-derived ones.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	base := []ClientOption{
		WithTimeout(cfg.Timeout),
		WithRetryConfig(&RetryConfig{MaxRetries: cfg.MaxRetries, RetryDelay: time.Second}),
	}
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	base = append(base, opts...)

	return NewClient(cfg.APIKey, base...), nil
}
